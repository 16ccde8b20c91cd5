package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/CPU-commits/Intranet_BSubjects/forms"
	"github.com/CPU-commits/Intranet_BSubjects/funct"
	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/CPU-commits/Intranet_BSubjects/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Nats channels
const (
	SUBJECT_CREATED  = "subjects.created"
	SUBJECT_UPDATED  = "subjects.updated"
	SUBJECT_DELETED  = "subjects.deleted"
	STUDENT_ENROLLED = "subjects.enrolled"
	STUDENT_DROPPED  = "subjects.dropped"
)

type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	GetWithStudents(ctx context.Context, id primitive.ObjectID) (*models.SubjectWithStudents, error)
	GetAllWithStudents(ctx context.Context) ([]models.SubjectWithStudents, error)
	GetAllSubjects(ctx context.Context) ([]models.Subject, error)
	GetByTeacher(ctx context.Context, teacher string) ([]models.Subject, error)
	GetByStudent(ctx context.Context, idStudent primitive.ObjectID) ([]models.Subject, error)
	Rename(ctx context.Context, id primitive.ObjectID, name string) (*models.Subject, error)
	Enroll(ctx context.Context, id, idStudent primitive.ObjectID) (*models.Subject, error)
	Drop(ctx context.Context, id, idStudent primitive.ObjectID) (*models.Subject, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.SubjectFields) (*models.Subject, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Subject, error)
	GetStudents(ctx context.Context, id primitive.ObjectID) ([]models.SimpleUser, error)
}

type EventPublisher interface {
	PublishEncode(channel string, data interface{}) error
}

type SubjectEvent struct {
	ID      string          `json:"_id"`
	Subject *models.Subject `json:"subject,omitempty"`
	Student string          `json:"student,omitempty"`
}

type SubjectsServiceOptions struct {
	// Nil disables events
	Publisher EventPublisher
	// Nil disables search
	Indexer     SubjectIndexer
	CollegeName string
}

type SubjectsService struct {
	store       SubjectStore
	publisher   EventPublisher
	indexer     SubjectIndexer
	collegeName string
	logger      *zap.Logger
}

var ErrSubjectNotFound = errors.New("Subject not found")

func parseID(id, field string) (primitive.ObjectID, *res.ErrorRes) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, res.NewValidationError(
			fmt.Errorf("%s must be a valid id", field),
		)
	}
	return objId, nil
}

func parseIDs(ids []string) ([]primitive.ObjectID, *res.ErrorRes) {
	objIds, err := funct.Map(ids, primitive.ObjectIDFromHex)
	if err != nil {
		return nil, res.NewValidationError(fmt.Errorf("alumni must contain valid ids"))
	}
	return funct.Uniq(objIds), nil
}

func (s *SubjectsService) internalError(operation string, err error) *res.ErrorRes {
	s.logger.Error(
		"subject store failure",
		zap.String("operation", operation),
		zap.Error(err),
	)
	return res.NewInternalError(err)
}

func (s *SubjectsService) publish(channel string, event SubjectEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEncode(channel, event); err != nil {
		s.logger.Warn(
			"publish subject event",
			zap.String("channel", channel),
			zap.String("subject", event.ID),
			zap.Error(err),
		)
	}
}

func (s *SubjectsService) index(ctx context.Context, subject *models.Subject) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.Index(ctx, subject); err != nil {
		s.logger.Warn(
			"index subject",
			zap.String("subject", subject.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (s *SubjectsService) unindex(ctx context.Context, id primitive.ObjectID) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.Remove(ctx, id.Hex()); err != nil {
		s.logger.Warn(
			"remove subject from index",
			zap.String("subject", id.Hex()),
			zap.Error(err),
		)
	}
}

func (s *SubjectsService) NewSubject(ctx context.Context, subject *forms.SubjectForm) (*models.Subject, *res.ErrorRes) {
	if subject.Name == "" || subject.Teacher == "" {
		return nil, res.NewValidationError(fmt.Errorf("name and teacher are required"))
	}
	alumni, errRes := parseIDs(subject.Alumni)
	if errRes != nil {
		return nil, errRes
	}

	subjectData, err := s.store.Create(ctx, &models.Subject{
		Name:    subject.Name,
		Teacher: subject.Teacher,
		Alumni:  alumni,
	})
	if err != nil {
		return nil, s.internalError("create", err)
	}
	s.index(ctx, subjectData)
	s.publish(SUBJECT_CREATED, SubjectEvent{
		ID:      subjectData.ID.Hex(),
		Subject: subjectData,
	})
	return subjectData, nil
}

func (s *SubjectsService) GetSubjects(ctx context.Context) ([]models.SubjectWithStudents, *res.ErrorRes) {
	subjects, err := s.store.GetAllWithStudents(ctx)
	if err != nil {
		return nil, s.internalError("get_all", err)
	}
	return subjects, nil
}

// Nil subject if it does not exist
func (s *SubjectsService) GetSubject(ctx context.Context, idSubject string) (*models.SubjectWithStudents, *res.ErrorRes) {
	objId, errRes := parseID(idSubject, "id")
	if errRes != nil {
		return nil, errRes
	}
	subject, err := s.store.GetWithStudents(ctx, objId)
	if err != nil {
		return nil, s.internalError("get", err)
	}
	return subject, nil
}

func (s *SubjectsService) GetSubjectsByTeacher(ctx context.Context, teacher string) ([]models.Subject, *res.ErrorRes) {
	subjects, err := s.store.GetByTeacher(ctx, teacher)
	if err != nil {
		return nil, s.internalError("get_by_teacher", err)
	}
	return subjects, nil
}

func (s *SubjectsService) GetSubjectsByStudent(ctx context.Context, idStudent string) ([]models.Subject, *res.ErrorRes) {
	objId, errRes := parseID(idStudent, "studentId")
	if errRes != nil {
		return nil, errRes
	}
	subjects, err := s.store.GetByStudent(ctx, objId)
	if err != nil {
		return nil, s.internalError("get_by_student", err)
	}
	return subjects, nil
}

// Nil students if the subject does not exist
func (s *SubjectsService) GetSubjectStudents(ctx context.Context, idSubject string) ([]models.SimpleUser, *res.ErrorRes) {
	objId, errRes := parseID(idSubject, "id")
	if errRes != nil {
		return nil, errRes
	}
	students, err := s.store.GetStudents(ctx, objId)
	if err != nil {
		return nil, s.internalError("get_students", err)
	}
	return students, nil
}

func (s *SubjectsService) RenameSubject(ctx context.Context, idSubject, newName string) (*models.Subject, *res.ErrorRes) {
	if newName == "" {
		return nil, res.NewValidationError(fmt.Errorf("newName is required"))
	}
	objId, errRes := parseID(idSubject, "id")
	if errRes != nil {
		return nil, errRes
	}
	subject, err := s.store.Rename(ctx, objId, newName)
	if err != nil {
		return nil, s.internalError("rename", err)
	}
	if subject != nil {
		s.index(ctx, subject)
		s.publish(SUBJECT_UPDATED, SubjectEvent{
			ID:      subject.ID.Hex(),
			Subject: subject,
		})
	}
	return subject, nil
}

func (s *SubjectsService) parseEnrollment(idSubject, idStudent string) (primitive.ObjectID, primitive.ObjectID, *res.ErrorRes) {
	if idStudent == "" {
		return primitive.NilObjectID, primitive.NilObjectID, res.NewValidationError(
			fmt.Errorf("studentId is required"),
		)
	}
	objId, errRes := parseID(idSubject, "id")
	if errRes != nil {
		return primitive.NilObjectID, primitive.NilObjectID, errRes
	}
	objIdStudent, errRes := parseID(idStudent, "studentId")
	if errRes != nil {
		return primitive.NilObjectID, primitive.NilObjectID, errRes
	}
	return objId, objIdStudent, nil
}

// Enrolling an enrolled student is a no-op
func (s *SubjectsService) EnrollStudent(ctx context.Context, idSubject, idStudent string) (*models.Subject, *res.ErrorRes) {
	objId, objIdStudent, errRes := s.parseEnrollment(idSubject, idStudent)
	if errRes != nil {
		return nil, errRes
	}
	subject, err := s.store.Enroll(ctx, objId, objIdStudent)
	if err != nil {
		return nil, s.internalError("enroll", err)
	}
	if subject != nil {
		s.publish(STUDENT_ENROLLED, SubjectEvent{
			ID:      subject.ID.Hex(),
			Student: objIdStudent.Hex(),
		})
	}
	return subject, nil
}

// Dropping a student that is not enrolled is a no-op
func (s *SubjectsService) DropStudent(ctx context.Context, idSubject, idStudent string) (*models.Subject, *res.ErrorRes) {
	objId, objIdStudent, errRes := s.parseEnrollment(idSubject, idStudent)
	if errRes != nil {
		return nil, errRes
	}
	subject, err := s.store.Drop(ctx, objId, objIdStudent)
	if err != nil {
		return nil, s.internalError("drop", err)
	}
	if subject != nil {
		s.publish(STUDENT_DROPPED, SubjectEvent{
			ID:      subject.ID.Hex(),
			Student: objIdStudent.Hex(),
		})
	}
	return subject, nil
}

func (s *SubjectsService) UpdateSubject(
	ctx context.Context,
	idSubject string,
	subject *forms.SubjectUpdateForm,
) (*models.Subject, *res.ErrorRes) {
	objId, errRes := parseID(idSubject, "id")
	if errRes != nil {
		return nil, errRes
	}
	if subject.Name != nil && *subject.Name == "" {
		return nil, res.NewValidationError(fmt.Errorf("name must not be empty"))
	}
	if subject.Teacher != nil && *subject.Teacher == "" {
		return nil, res.NewValidationError(fmt.Errorf("teacher must not be empty"))
	}
	fields := models.SubjectFields{
		Name:    subject.Name,
		Teacher: subject.Teacher,
	}
	if subject.Alumni != nil {
		alumni, errRes := parseIDs(*subject.Alumni)
		if errRes != nil {
			return nil, errRes
		}
		fields.Alumni = &alumni
	}

	subjectData, err := s.store.Update(ctx, objId, fields)
	if err != nil {
		return nil, s.internalError("update", err)
	}
	if subjectData != nil {
		s.index(ctx, subjectData)
		s.publish(SUBJECT_UPDATED, SubjectEvent{
			ID:      subjectData.ID.Hex(),
			Subject: subjectData,
		})
	}
	return subjectData, nil
}

// Returns the removed subject, nil if it did not exist
func (s *SubjectsService) DeleteSubject(ctx context.Context, idSubject string) (*models.Subject, *res.ErrorRes) {
	objId, errRes := parseID(idSubject, "id")
	if errRes != nil {
		return nil, errRes
	}
	subject, err := s.store.Delete(ctx, objId)
	if err != nil {
		return nil, s.internalError("delete", err)
	}
	if subject != nil {
		s.unindex(ctx, subject.ID)
		s.publish(SUBJECT_DELETED, SubjectEvent{
			ID: subject.ID.Hex(),
		})
	}
	return subject, nil
}

func NewSubjectsService(store SubjectStore, logger *zap.Logger, options SubjectsServiceOptions) *SubjectsService {
	return &SubjectsService{
		store:       store,
		publisher:   options.Publisher,
		indexer:     options.Indexer,
		collegeName: options.CollegeName,
		logger:      logger.With(zap.String("component", "subjects_service")),
	}
}
