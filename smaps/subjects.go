package smaps

import (
	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/CPU-commits/Intranet_BSubjects/services"
)

type SubjectMap struct {
	Subject *models.Subject `json:"subject"`
}

type SubjectWithStudentsMap struct {
	Subject *models.SubjectWithStudents `json:"subject"`
}

type SubjectsMap struct {
	Subjects []models.Subject `json:"subjects"`
}

type SubjectsWithStudentsMap struct {
	Subjects []models.SubjectWithStudents `json:"subjects"`
}

type StudentsMap struct {
	Students []models.SimpleUser `json:"students"`
}

type SearchHitsMap struct {
	Hits []services.SubjectHit `json:"hits"`
}
