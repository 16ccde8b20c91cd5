package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/CPU-commits/Intranet_BSubjects/stack"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func nestRequest(t *testing.T, id string) []byte {
	t.Helper()
	data, err := stack.FormatRequestNest(map[string]string{"_id": id})
	if err != nil {
		t.Fatalf("FormatRequestNest: %v", err)
	}
	return data
}

func TestNatsSubjectsStudent(t *testing.T) {
	service, _, _, _ := newTestService(t)
	student := primitive.NewObjectID().Hex()
	mustCreate(t, service, "Calc", "Dr.X", student)
	mustCreate(t, service, "Physics", "Dr.Y")

	response, err := service.subjectsStudent(context.Background(), nestRequest(t, student))
	if err != nil {
		t.Fatalf("subjectsStudent: %v", err)
	}
	var subjects []models.Subject
	if err := json.Unmarshal(response, &subjects); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(subjects) != 1 || subjects[0].Name != "Calc" {
		t.Errorf("subjects = %+v", subjects)
	}
}

func TestNatsSubjectStudents(t *testing.T) {
	service, store, _, _ := newTestService(t)
	user := models.SimpleUser{ID: primitive.NewObjectID(), Name: "Ana"}
	store.SeedUser(user)
	subject := mustCreate(t, service, "Calc", "Dr.X", user.ID.Hex())

	response, err := service.subjectStudents(context.Background(), nestRequest(t, subject.ID.Hex()))
	if err != nil {
		t.Fatalf("subjectStudents: %v", err)
	}
	var students []models.SimpleUser
	if err := json.Unmarshal(response, &students); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(students) != 1 || students[0].ID != user.ID {
		t.Errorf("students = %+v", students)
	}

	_, err = service.subjectStudents(context.Background(), nestRequest(t, primitive.NewObjectID().Hex()))
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("err = %v, want ErrSubjectNotFound", err)
	}
}

func TestNatsBadPayload(t *testing.T) {
	service, _, _, _ := newTestService(t)

	if _, err := service.subjectsStudent(context.Background(), []byte(`{"id":"1"}`)); err == nil {
		t.Error("expected an error without data")
	}
	if _, err := service.subjectsStudent(context.Background(), nestRequest(t, "S1")); err == nil {
		t.Error("expected an error for a malformed id")
	}
}
