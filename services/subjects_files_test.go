package services

import (
	"bytes"
	"testing"

	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func exportSubject() *models.SubjectWithStudents {
	return &models.SubjectWithStudents{
		ID:      primitive.NewObjectID(),
		Name:    "Cálculo",
		Teacher: "Dr.X",
		Alumni: []models.SimpleUser{
			{
				ID:             primitive.NewObjectID(),
				Name:           "Ana",
				FirstLastname:  "Rojas",
				SecondLastname: "Núñez",
				Rut:            "12345678-9",
				Email:          "ana@college.cl",
			},
			{
				ID:   primitive.NewObjectID(),
				Name: "Luis",
			},
		},
	}
}

func TestExportStudentsExcel(t *testing.T) {
	service, _, _, _ := newTestService(t)
	var buf bytes.Buffer

	if err := service.ExportStudentsExcel(exportSubject(), &buf); err != nil {
		t.Fatalf("ExportStudentsExcel: %v", err)
	}
	file, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer file.Close()

	cells := map[string]string{
		"A1": "Student",
		"B1": "Rut",
		"A2": "Ana Rojas Núñez",
		"C2": "ana@college.cl",
		"A3": "Luis",
	}
	for cell, want := range cells {
		got, err := file.GetCellValue(STUDENTS_SHEET, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestExportStudentsPDF(t *testing.T) {
	service, _, _, _ := newTestService(t)
	var buf bytes.Buffer

	if err := service.ExportStudentsPDF(exportSubject(), &buf); err != nil {
		t.Fatalf("ExportStudentsPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a pdf (%d bytes)", buf.Len())
	}
}
