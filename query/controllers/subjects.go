package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/CPU-commits/Intranet_BSubjects/res"
	"github.com/CPU-commits/Intranet_BSubjects/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	XLSX_CONTENT_TYPE = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDF_CONTENT_TYPE  = "application/pdf"
)

type SubjectsController struct {
	subjectsService *services.SubjectsService
	logger          *zap.Logger
}

func NewSubjectsController(subjectsService *services.SubjectsService, logger *zap.Logger) *SubjectsController {
	return &SubjectsController{
		subjectsService: subjectsService,
		logger:          logger,
	}
}

// GetSubjects godoc
// @Summary     Get subjects
// @Description Get all subjects with their students resolved
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.SubjectsWithStudentsMap}
// @Failure     500 {object} res.Response{} "Server Internal Error"
// @Router      / [get]
func (s *SubjectsController) GetSubjects(c *gin.Context) {
	subjects, err := s.subjectsService.GetSubjects(c.Request.Context())
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	res.Body(c, http.StatusOK, "subjects", subjects)
}

// GetSubject godoc
// @Summary     Get subject
// @Description Get a subject with its students resolved
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.SubjectWithStudentsMap}
// @Failure     400 {object} res.Response{} "Bad path param"
// @Failure     404 {object} res.Response{} "Subject not found"
// @Failure     500 {object} res.Response{} "Server Internal Error"
// @Router      /{id} [get]
func (s *SubjectsController) GetSubject(c *gin.Context) {
	subject, err := s.subjectsService.GetSubject(c.Request.Context(), c.Param("id"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	if subject == nil {
		res.AbortWithMessage(c, http.StatusNotFound, services.ErrSubjectNotFound.Error())
		return
	}
	res.Body(c, http.StatusOK, "subject", subject)
}

// GetSubjectsByTeacher godoc
// @Summary     Get teacher subjects
// @Description Get the subjects taught by a teacher, alumni as ids
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       teacher path     string true "Teacher"
// @Success     200     {object} res.Response{body=smaps.SubjectsMap}
// @Failure     500     {object} res.Response{} "Server Internal Error"
// @Router      /teacher/{teacher} [get]
func (s *SubjectsController) GetSubjectsByTeacher(c *gin.Context) {
	subjects, err := s.subjectsService.GetSubjectsByTeacher(c.Request.Context(), c.Param("teacher"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	res.Body(c, http.StatusOK, "subjects", subjects)
}

// GetSubjectsByStudent godoc
// @Summary     Get student subjects
// @Description Get the subjects a student is enrolled in
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       studentId path     string true "MongoID"
// @Success     200       {object} res.Response{body=smaps.SubjectsMap}
// @Failure     400       {object} res.Response{} "Bad path param"
// @Failure     500       {object} res.Response{} "Server Internal Error"
// @Router      /student/{studentId} [get]
func (s *SubjectsController) GetSubjectsByStudent(c *gin.Context) {
	subjects, err := s.subjectsService.GetSubjectsByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	res.Body(c, http.StatusOK, "subjects", subjects)
}

// GetSubjectStudents godoc
// @Summary     Get subject students
// @Description Get the resolved students of a subject
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{body=smaps.StudentsMap}
// @Failure     400 {object} res.Response{} "Bad path param"
// @Failure     404 {object} res.Response{} "Subject not found"
// @Failure     500 {object} res.Response{} "Server Internal Error"
// @Router      /{id}/students [get]
func (s *SubjectsController) GetSubjectStudents(c *gin.Context) {
	students, err := s.subjectsService.GetSubjectStudents(c.Request.Context(), c.Param("id"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	if students == nil {
		res.AbortWithMessage(c, http.StatusNotFound, services.ErrSubjectNotFound.Error())
		return
	}
	res.Body(c, http.StatusOK, "students", students)
}

// ExportStudents godoc
// @Summary     Export students
// @Description Export the students of a subject to Excel or PDF
// @Tags        subjects
// @Accept      json
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce     application/pdf
// @Param       id     path  string true  "MongoID"
// @Param       format query string false "xlsx or pdf" Enums(xlsx, pdf)
// @Success     200    {file} binary "Roster file"
// @Failure     400    {object} res.Response{} "Bad format"
// @Failure     404    {object} res.Response{} "Subject not found"
// @Failure     500    {object} res.Response{} "Server Internal Error"
// @Router      /{id}/students/export [get]
func (s *SubjectsController) ExportStudents(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	if format != "xlsx" && format != "pdf" {
		res.AbortWithMessage(c, http.StatusBadRequest, "format must be one of [xlsx pdf]")
		return
	}
	subject, err := s.subjectsService.GetSubject(c.Request.Context(), c.Param("id"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	if subject == nil {
		res.AbortWithMessage(c, http.StatusNotFound, services.ErrSubjectNotFound.Error())
		return
	}

	var buf bytes.Buffer
	contentType := XLSX_CONTENT_TYPE
	var errExport error
	if format == "pdf" {
		contentType = PDF_CONTENT_TYPE
		errExport = s.subjectsService.ExportStudentsPDF(subject, &buf)
	} else {
		errExport = s.subjectsService.ExportStudentsExcel(subject, &buf)
	}
	if errExport != nil {
		res.AbortWithError(c, s.logger, res.NewInternalError(errExport))
		return
	}
	c.Header(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s.%s\"", subject.ID.Hex(), format),
	)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Search godoc
// @Summary     Search subjects
// @Description Search subjects by name or teacher
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       q   query    string true "Search"
// @Success     200 {object} res.Response{body=smaps.SearchHitsMap}
// @Failure     400 {object} res.Response{} "Bad query param"
// @Failure     503 {object} res.Response{} "Search Service Unavailable"
// @Router      /search [get]
func (s *SubjectsController) Search(c *gin.Context) {
	hits, err := s.subjectsService.SearchSubjects(c.Request.Context(), c.Query("q"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	res.Body(c, http.StatusOK, "hits", hits)
}
