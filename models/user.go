package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Owned by the users service, only read here
const USERS_COLLECTION = "users"

type SimpleUser struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id" example:"63785424db1efbc237faecca"`
	Name           string             `json:"name,omitempty" bson:"name" example:"Name" extensions:"x-omitempty"`
	FirstLastname  string             `json:"first_lastname,omitempty" bson:"first_lastname" example:"FirstLastname" extensions:"x-omitempty"`
	SecondLastname string             `json:"second_lastname,omitempty" bson:"second_lastname" example:"SecondLastname" extensions:"x-omitempty"`
	Rut            string             `json:"rut,omitempty" bson:"rut" example:"12345678-9" extensions:"x-omitempty"`
	Email          string             `json:"email,omitempty" bson:"email" example:"student@college.cl" extensions:"x-omitempty"`
}

func (user SimpleUser) FullName() string {
	fullName := user.Name
	for _, part := range []string{user.FirstLastname, user.SecondLastname} {
		if part != "" {
			fullName += " " + part
		}
	}
	return fullName
}
