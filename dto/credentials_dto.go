package dto

import (
	"github.com/nuam-exchange/taxrating-backend/models"
)

type Identity struct {
	UserId     string `json:"user_id,omitempty"`
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	ApiKeyId   string `json:"api_key_id,omitempty"`
	ApiKeyName string `json:"api_key_name,omitempty"`
}

type Credentials struct {
	Role          string   `json:"role"`
	ActorIdentity Identity `json:"actor_identity"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		Role: creds.Role.String(),
		ActorIdentity: Identity{
			UserId:     string(creds.ActorIdentity.UserId),
			Email:      creds.ActorIdentity.Email,
			FirstName:  creds.ActorIdentity.FirstName,
			LastName:   creds.ActorIdentity.LastName,
			ApiKeyId:   creds.ActorIdentity.ApiKeyId,
			ApiKeyName: creds.ActorIdentity.ApiKeyName,
		},
	}
}

func AdaptCredential(dto Credentials) models.Credentials {
	return models.Credentials{
		Role: models.RoleFromString(dto.Role),
		ActorIdentity: models.Identity{
			UserId:     models.UserId(dto.ActorIdentity.UserId),
			Email:      dto.ActorIdentity.Email,
			FirstName:  dto.ActorIdentity.FirstName,
			LastName:   dto.ActorIdentity.LastName,
			ApiKeyId:   dto.ActorIdentity.ApiKeyId,
			ApiKeyName: dto.ActorIdentity.ApiKeyName,
		},
	}
}
