package services

import (
	"fmt"
	"io"

	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const STUDENTS_SHEET = "Students"

func (s *SubjectsService) ExportStudentsExcel(subject *models.SubjectWithStudents, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()
	file.SetSheetName("Sheet1", STUDENTS_SHEET)
	// Set columns
	columns := []string{"Student", "Rut", "Email"}
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(STUDENTS_SHEET, cell, column); err != nil {
			return err
		}
	}
	// Set values
	for i, student := range subject.Alumni {
		row := []string{student.FullName(), student.Rut, student.Email}
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(STUDENTS_SHEET, cell, value); err != nil {
				return err
			}
		}
	}

	return file.Write(w)
}

func (s *SubjectsService) ExportStudentsPDF(subject *models.SubjectWithStudents, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()
	// Header
	if s.collegeName != "" {
		pdf.CellFormat(0, 8, tr(s.collegeName), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 8, tr(subject.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Teacher: %s", subject.Teacher)), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	// Table
	widths := []float64{10, 90, 35, 55}
	pdf.SetFont("Arial", "B", 10)
	for i, header := range []string{"#", "Student", "Rut", "Email"} {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for i, student := range subject.Alumni {
		row := []string{
			fmt.Sprintf("%d", i+1),
			tr(student.FullName()),
			student.Rut,
			student.Email,
		}
		for j, value := range row {
			pdf.CellFormat(widths[j], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
