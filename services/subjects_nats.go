package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CPU-commits/Intranet_BSubjects/stack"
	natsPackage "github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const RESPONDER_TIMEOUT = time.Second * 5

type Subscriber interface {
	Subscribe(channel string, toDo natsPackage.MsgHandler) (*natsPackage.Subscription, error)
}

func payloadID(data []byte) (string, error) {
	payload, err := stack.DecodeDataNest(data)
	if err != nil {
		return "", err
	}
	id, ok := payload["_id"].(string)
	if !ok {
		return "", fmt.Errorf("payload without _id")
	}
	return id, nil
}

func (s *SubjectsService) subjectsStudent(ctx context.Context, data []byte) ([]byte, error) {
	idStudent, err := payloadID(data)
	if err != nil {
		return nil, err
	}
	subjects, errRes := s.GetSubjectsByStudent(ctx, idStudent)
	if errRes != nil {
		return nil, errRes
	}
	return json.Marshal(subjects)
}

func (s *SubjectsService) subjectStudents(ctx context.Context, data []byte) ([]byte, error) {
	idSubject, err := payloadID(data)
	if err != nil {
		return nil, err
	}
	students, errRes := s.GetSubjectStudents(ctx, idSubject)
	if errRes != nil {
		return nil, errRes
	}
	if students == nil {
		return nil, ErrSubjectNotFound
	}
	return json.Marshal(students)
}

func (s *SubjectsService) responder(
	channel string,
	toDo func(ctx context.Context, data []byte) ([]byte, error),
) natsPackage.MsgHandler {
	return func(m *natsPackage.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), RESPONDER_TIMEOUT)
		defer cancel()

		response, err := toDo(ctx, m.Data)
		if err != nil {
			s.logger.Warn(
				"nats request",
				zap.String("channel", channel),
				zap.Error(err),
			)
			// Requesters expect null on failure
			response = []byte("null")
		}
		if err := m.Respond(response); err != nil {
			s.logger.Warn(
				"nats respond",
				zap.String("channel", channel),
				zap.Error(err),
			)
		}
	}
}

// Subscribe the request/reply handlers other services use
func (s *SubjectsService) SubscribeResponders(nats Subscriber) error {
	handlers := map[string]func(ctx context.Context, data []byte) ([]byte, error){
		"get_subjects_student": s.subjectsStudent,
		"get_subject_students": s.subjectStudents,
	}
	for channel, toDo := range handlers {
		if _, err := nats.Subscribe(channel, s.responder(channel, toDo)); err != nil {
			return err
		}
	}
	return nil
}
