package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BSubjects/forms"
	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/CPU-commits/Intranet_BSubjects/res"
	"github.com/CPU-commits/Intranet_BSubjects/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

func (s *SubjectsController) respondSubject(c *gin.Context, subject *models.Subject, err *res.ErrorRes) {
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

// NewSubject godoc
// @Summary     New subject
// @Description Create a subject, repeated alumni are stored once
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       subject body     forms.SubjectForm true "Subject"
// @Success     201     {object} res.Response{body=smaps.SubjectMap}
// @Failure     400     {object} res.Response{} "Bad body"
// @Failure     500     {object} res.Response{} "Server Internal Error"
// @Router      / [post]
func (s *SubjectsController) NewSubject(c *gin.Context) {
	var subject forms.SubjectForm
	// Binding
	if err := c.ShouldBindJSON(&subject); err != nil {
		res.AbortWithMessage(c, http.StatusBadRequest, forms.BindingMessage(err))
		return
	}
	// Insert
	subjectData, err := s.subjectsService.NewSubject(c.Request.Context(), &subject)
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	res.Body(c, http.StatusCreated, "subject", subjectData)
}

// RenameSubject godoc
// @Summary     Rename subject
// @Description Change only the name of a subject
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id   path     string           true "MongoID"
// @Param       name body     forms.RenameForm true "New name"
// @Success     200  {object} res.Response{body=smaps.SubjectMap}
// @Failure     400  {object} res.Response{} "Bad body or path param"
// @Failure     404  {object} res.Response{} "Subject not found"
// @Failure     500  {object} res.Response{} "Server Internal Error"
// @Router      /{id}/rename [put]
func (s *SubjectsController) RenameSubject(c *gin.Context) {
	var rename forms.RenameForm
	if err := c.ShouldBindJSON(&rename); err != nil {
		res.AbortWithMessage(c, http.StatusBadRequest, forms.BindingMessage(err))
		return
	}
	subject, err := s.subjectsService.RenameSubject(c.Request.Context(), c.Param("id"), rename.NewName)
	s.respondSubject(c, subject, err)
}

// EnrollStudent godoc
// @Summary     Enroll student
// @Description Add a student to the subject alumni, enrolling twice is a no-op
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id      path     string            true "MongoID"
// @Param       student body     forms.StudentForm true "Student"
// @Success     200     {object} res.Response{body=smaps.SubjectMap}
// @Failure     400     {object} res.Response{} "Bad body or path param"
// @Failure     404     {object} res.Response{} "Subject not found"
// @Failure     500     {object} res.Response{} "Server Internal Error"
// @Router      /{id}/enroll [put]
func (s *SubjectsController) EnrollStudent(c *gin.Context) {
	var student forms.StudentForm
	if err := c.ShouldBindJSON(&student); err != nil {
		res.AbortWithMessage(c, http.StatusBadRequest, forms.BindingMessage(err))
		return
	}
	subject, err := s.subjectsService.EnrollStudent(c.Request.Context(), c.Param("id"), student.StudentID)
	s.respondSubject(c, subject, err)
}

// DropStudent godoc
// @Summary     Drop student
// @Description Remove a student from the subject alumni, dropping an absent student is a no-op
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id      path     string            true "MongoID"
// @Param       student body     forms.StudentForm true "Student"
// @Success     200     {object} res.Response{body=smaps.SubjectMap}
// @Failure     400     {object} res.Response{} "Bad body or path param"
// @Failure     404     {object} res.Response{} "Subject not found"
// @Failure     500     {object} res.Response{} "Server Internal Error"
// @Router      /{id}/drop [put]
func (s *SubjectsController) DropStudent(c *gin.Context) {
	var student forms.StudentForm
	if err := c.ShouldBindJSON(&student); err != nil {
		res.AbortWithMessage(c, http.StatusBadRequest, forms.BindingMessage(err))
		return
	}
	subject, err := s.subjectsService.DropStudent(c.Request.Context(), c.Param("id"), student.StudentID)
	s.respondSubject(c, subject, err)
}

// UpdateSubject godoc
// @Summary     Update subject
// @Description Merge the given fields into the subject
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id      path     string                  true "MongoID"
// @Param       subject body     forms.SubjectUpdateForm true "Fields"
// @Success     200     {object} res.Response{body=smaps.SubjectMap}
// @Failure     400     {object} res.Response{} "Bad body or path param"
// @Failure     404     {object} res.Response{} "Subject not found"
// @Failure     500     {object} res.Response{} "Server Internal Error"
// @Router      /{id} [put]
func (s *SubjectsController) UpdateSubject(c *gin.Context) {
	var subject forms.SubjectUpdateForm
	if err := c.ShouldBindJSON(&subject); err != nil {
		res.AbortWithMessage(c, http.StatusBadRequest, forms.BindingMessage(err))
		return
	}
	subjectData, err := s.subjectsService.UpdateSubject(c.Request.Context(), c.Param("id"), &subject)
	s.respondSubject(c, subjectData, err)
}

// DeleteSubject godoc
// @Summary     Delete subject
// @Description Delete a subject, students are not touched
// @Tags        subjects
// @Accept      json
// @Produce     json
// @Param       id  path     string true "MongoID"
// @Success     200 {object} res.Response{} "Subject deleted"
// @Failure     400 {object} res.Response{} "Bad path param"
// @Failure     404 {object} res.Response{} "Subject not found"
// @Failure     500 {object} res.Response{} "Server Internal Error"
// @Router      /{id} [delete]
func (s *SubjectsController) DeleteSubject(c *gin.Context) {
	subject, err := s.subjectsService.DeleteSubject(c.Request.Context(), c.Param("id"))
	if err != nil {
		res.AbortWithError(c, s.logger, err)
		return
	}
	if subject == nil {
		res.AbortWithMessage(c, http.StatusNotFound, services.ErrSubjectNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, res.Response{
		Success: true,
		Message: "Subject deleted",
	})
}
