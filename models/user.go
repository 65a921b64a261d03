package models

import "time"

type UserId string

type User struct {
	UserId    UserId
	Email     string
	FirstName string
	LastName  string
	Role      Role
	CreatedAt time.Time
}

type ApiKey struct {
	Id          string
	UserId      UserId
	Description string
	Hash        []byte
	Prefix      string
	Role        Role
	CreatedAt   time.Time
}
