// Package memory is an in-memory subject store for tests and local runs
// without MongoDB. It follows the same absence rules as models.SubjectModel.
package memory

import (
	"context"
	"sync"

	"github.com/CPU-commits/Intranet_BSubjects/funct"
	"github.com/CPU-commits/Intranet_BSubjects/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu       sync.RWMutex
	subjects map[primitive.ObjectID]*models.Subject
	order    []primitive.ObjectID
	users    map[primitive.ObjectID]models.SimpleUser
	writes   int
	lookups  int
	err      error
}

func New() *Store {
	return &Store{
		subjects: make(map[primitive.ObjectID]*models.Subject),
		users:    make(map[primitive.ObjectID]models.SimpleUser),
	}
}

func (s *Store) SeedUser(user models.SimpleUser) {
	s.mu.Lock()
	s.users[user.ID] = user
	s.mu.Unlock()
}

// FailWith makes every following call return err, nil restores the store
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Writes counts the mutating calls that reached the store
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Lookups counts the calls that resolved alumni against users
func (s *Store) Lookups() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookups
}

func copySubject(subject *models.Subject) *models.Subject {
	c := *subject
	c.Alumni = append([]primitive.ObjectID{}, subject.Alumni...)
	return &c
}

func (s *Store) resolve(subject *models.Subject) models.SubjectWithStudents {
	alumni := []models.SimpleUser{}
	for _, id := range subject.Alumni {
		// $lookup drops references without a user
		if user, ok := s.users[id]; ok {
			alumni = append(alumni, user)
		}
	}
	return models.SubjectWithStudents{
		ID:      subject.ID,
		Name:    subject.Name,
		Teacher: subject.Teacher,
		Alumni:  alumni,
		V:       subject.V,
	}
}

func (s *Store) Create(_ context.Context, subject *models.Subject) (*models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	stored := copySubject(subject)
	stored.ID = primitive.NewObjectID()
	s.subjects[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return copySubject(stored), nil
}

func (s *Store) GetWithStudents(_ context.Context, id primitive.ObjectID) (*models.SubjectWithStudents, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.lookups++
	subject, ok := s.subjects[id]
	if !ok {
		return nil, nil
	}
	resolved := s.resolve(subject)
	return &resolved, nil
}

func (s *Store) GetAllWithStudents(_ context.Context) ([]models.SubjectWithStudents, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.lookups++
	subjects := []models.SubjectWithStudents{}
	for _, id := range s.order {
		subjects = append(subjects, s.resolve(s.subjects[id]))
	}
	return subjects, nil
}

func (s *Store) filter(cond func(subject *models.Subject) bool) ([]models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	subjects := []models.Subject{}
	for _, id := range s.order {
		if subject := s.subjects[id]; cond(subject) {
			subjects = append(subjects, *copySubject(subject))
		}
	}
	return subjects, nil
}

func (s *Store) GetAllSubjects(_ context.Context) ([]models.Subject, error) {
	return s.filter(func(*models.Subject) bool {
		return true
	})
}

func (s *Store) GetByTeacher(_ context.Context, teacher string) ([]models.Subject, error) {
	return s.filter(func(subject *models.Subject) bool {
		return subject.Teacher == teacher
	})
}

func (s *Store) GetByStudent(_ context.Context, idStudent primitive.ObjectID) ([]models.Subject, error) {
	return s.filter(func(subject *models.Subject) bool {
		return funct.Some(subject.Alumni, func(id primitive.ObjectID) bool {
			return id == idStudent
		})
	})
}

func (s *Store) mutate(id primitive.ObjectID, toDo func(subject *models.Subject)) (*models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	subject, ok := s.subjects[id]
	if !ok {
		return nil, nil
	}
	toDo(subject)
	return copySubject(subject), nil
}

func (s *Store) Rename(_ context.Context, id primitive.ObjectID, name string) (*models.Subject, error) {
	return s.mutate(id, func(subject *models.Subject) {
		subject.Name = name
	})
}

func (s *Store) Enroll(_ context.Context, id, idStudent primitive.ObjectID) (*models.Subject, error) {
	return s.mutate(id, func(subject *models.Subject) {
		enrolled := funct.Some(subject.Alumni, func(id primitive.ObjectID) bool {
			return id == idStudent
		})
		if !enrolled {
			subject.Alumni = append(subject.Alumni, idStudent)
		}
	})
}

func (s *Store) Drop(_ context.Context, id, idStudent primitive.ObjectID) (*models.Subject, error) {
	return s.mutate(id, func(subject *models.Subject) {
		alumni := []primitive.ObjectID{}
		for _, student := range subject.Alumni {
			if student != idStudent {
				alumni = append(alumni, student)
			}
		}
		subject.Alumni = alumni
	})
}

func (s *Store) Update(_ context.Context, id primitive.ObjectID, fields models.SubjectFields) (*models.Subject, error) {
	return s.mutate(id, func(subject *models.Subject) {
		if fields.Name != nil {
			subject.Name = *fields.Name
		}
		if fields.Teacher != nil {
			subject.Teacher = *fields.Teacher
		}
		if fields.Alumni != nil {
			subject.Alumni = append([]primitive.ObjectID{}, *fields.Alumni...)
		}
	})
}

func (s *Store) Delete(_ context.Context, id primitive.ObjectID) (*models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	subject, ok := s.subjects[id]
	if !ok {
		return nil, nil
	}
	delete(s.subjects, id)
	i := funct.Index(s.order, func(stored primitive.ObjectID) bool {
		return stored == id
	})
	s.order = append(s.order[:i], s.order[i+1:]...)
	return subject, nil
}

func (s *Store) GetStudents(ctx context.Context, id primitive.ObjectID) ([]models.SimpleUser, error) {
	subject, err := s.GetWithStudents(ctx, id)
	if err != nil || subject == nil {
		return nil, err
	}
	return subject.Alumni, nil
}
