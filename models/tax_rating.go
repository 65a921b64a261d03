package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type TaxRating struct {
	Id           string
	IssuerId     string
	InstrumentId string
	Rating       RatingGrade
	ValidFrom    time.Time
	ValidTo      null.Time
	Status       RatingStatus
	RiskLevel    null.String
	Comments     string
	CreatedBy    UserId
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RatingGrade string

const (
	RatingAAA RatingGrade = "AAA"
	RatingAA  RatingGrade = "AA"
	RatingA   RatingGrade = "A"
	RatingBBB RatingGrade = "BBB"
	RatingBB  RatingGrade = "BB"
	RatingB   RatingGrade = "B"
	RatingCCC RatingGrade = "CCC"
	RatingCC  RatingGrade = "CC"
	RatingC   RatingGrade = "C"
	RatingD   RatingGrade = "D"
)

var RatingGrades = []RatingGrade{
	RatingAAA, RatingAA, RatingA, RatingBBB, RatingBB,
	RatingB, RatingCCC, RatingCC, RatingC, RatingD,
}

func RatingGradeFrom(s string) (RatingGrade, bool) {
	for _, grade := range RatingGrades {
		if s == string(grade) {
			return grade, true
		}
	}
	return "", false
}

type RatingStatus string

const (
	RatingVigente    RatingStatus = "VIGENTE"
	RatingVencido    RatingStatus = "VENCIDO"
	RatingSuspendido RatingStatus = "SUSPENDIDO"
	RatingCancelado  RatingStatus = "CANCELADO"
)

var RatingStatuses = []RatingStatus{
	RatingVigente, RatingVencido, RatingSuspendido, RatingCancelado,
}

func RatingStatusFrom(s string) (RatingStatus, bool) {
	for _, status := range RatingStatuses {
		if s == string(status) {
			return status, true
		}
	}
	return "", false
}

type RiskLevel string

const (
	RiskMuyBajo  RiskLevel = "MUY_BAJO"
	RiskBajo     RiskLevel = "BAJO"
	RiskModerado RiskLevel = "MODERADO"
	RiskAlto     RiskLevel = "ALTO"
	RiskMuyAlto  RiskLevel = "MUY_ALTO"
)

var RiskLevels = []RiskLevel{
	RiskMuyBajo, RiskBajo, RiskModerado, RiskAlto, RiskMuyAlto,
}

func RiskLevelFrom(s string) (RiskLevel, bool) {
	for _, level := range RiskLevels {
		if s == string(level) {
			return level, true
		}
	}
	return "", false
}

type CreateTaxRatingInput struct {
	IssuerId     string
	InstrumentId string
	Rating       RatingGrade
	ValidFrom    time.Time
	ValidTo      null.Time
	Status       RatingStatus
	RiskLevel    null.String
	Comments     string
}

type UpdateTaxRatingInput struct {
	Id        string
	Rating    *RatingGrade
	ValidFrom *time.Time
	ValidTo   null.Time
	Status    *RatingStatus
	RiskLevel null.String
	Comments  *string
}

type TaxRatingFilters struct {
	IssuerId     string
	InstrumentId string
	Rating       string
	Status       string
}
