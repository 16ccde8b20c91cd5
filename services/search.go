package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CPU-commits/Intranet_BSubjects/db"
	"github.com/CPU-commits/Intranet_BSubjects/models"
	"github.com/CPU-commits/Intranet_BSubjects/res"
	"github.com/CPU-commits/Intranet_BSubjects/utils"
	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

const SUBJECTS_INDEX = "subjects"

// Index requests in flight while reindexing
const REINDEX_WEIGHT = 5

type SubjectHit struct {
	ID      string  `json:"_id" example:"637d5de216f58bc8ec7f7f51"`
	Name    string  `json:"name" example:"Calculus"`
	Teacher string  `json:"teacher" example:"Dr. X"`
	Score   float64 `json:"score" example:"1.2"`
}

type SubjectIndexer interface {
	Index(ctx context.Context, subject *models.Subject) error
	Remove(ctx context.Context, idSubject string) error
	Search(ctx context.Context, search string) ([]SubjectHit, error)
}

type indexedSubject struct {
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
}

type ElasticIndexer struct {
	es *elasticsearch.Client
}

func (indexer *ElasticIndexer) Index(ctx context.Context, subject *models.Subject) error {
	body, err := json.Marshal(indexedSubject{
		Name:    subject.Name,
		Teacher: subject.Teacher,
	})
	if err != nil {
		return err
	}
	response, err := indexer.es.Index(
		SUBJECTS_INDEX,
		bytes.NewReader(body),
		indexer.es.Index.WithContext(ctx),
		indexer.es.Index.WithDocumentID(subject.ID.Hex()),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.IsError() {
		return fmt.Errorf("index subject: %s", response.Status())
	}
	return nil
}

func (indexer *ElasticIndexer) Remove(ctx context.Context, idSubject string) error {
	response, err := indexer.es.Delete(
		SUBJECTS_INDEX,
		idSubject,
		indexer.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	// Never indexed
	if response.StatusCode == 404 {
		return nil
	}
	if response.IsError() {
		return fmt.Errorf("remove subject: %s", response.Status())
	}
	return nil
}

func searchQuery(search string) (*strings.Reader, error) {
	escaped, err := json.Marshal(search)
	if err != nil {
		return nil, err
	}
	return db.ConstructQuery(fmt.Sprintf(
		`"multi_match": { "query": %s, "fields": ["name^2", "teacher"], "fuzziness": "AUTO" }`,
		escaped,
	)), nil
}

func (indexer *ElasticIndexer) Search(ctx context.Context, search string) ([]SubjectHit, error) {
	query, err := searchQuery(search)
	if err != nil {
		return nil, err
	}
	response, err := indexer.es.Search(
		indexer.es.Search.WithContext(ctx),
		indexer.es.Search.WithIndex(SUBJECTS_INDEX),
		indexer.es.Search.WithBody(query),
	)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.IsError() {
		return nil, fmt.Errorf("search subjects: %s", response.Status())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Score  float64        `json:"_score"`
				Source indexedSubject `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, err
	}
	hits := make([]SubjectHit, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		hits = append(hits, SubjectHit{
			ID:      hit.ID,
			Name:    hit.Source.Name,
			Teacher: hit.Source.Teacher,
			Score:   hit.Score,
		})
	}
	return hits, nil
}

func NewElasticIndexer(es *elasticsearch.Client) *ElasticIndexer {
	return &ElasticIndexer{
		es: es,
	}
}

func (s *SubjectsService) SearchSubjects(ctx context.Context, search string) ([]SubjectHit, *res.ErrorRes) {
	if search == "" {
		return nil, res.NewValidationError(fmt.Errorf("q is required"))
	}
	if s.indexer == nil {
		return nil, res.NewUnavailableError(fmt.Errorf("search is not configured"))
	}
	hits, err := s.indexer.Search(ctx, search)
	if err != nil {
		s.logger.Warn("search subjects", zap.Error(err))
		return nil, res.NewUnavailableError(err)
	}
	return hits, nil
}

// ReindexSubjects writes every stored subject to the index
func (s *SubjectsService) ReindexSubjects(ctx context.Context) (int, *res.ErrorRes) {
	if s.indexer == nil {
		return 0, res.NewUnavailableError(fmt.Errorf("search is not configured"))
	}
	subjects, err := s.store.GetAllSubjects(ctx)
	if err != nil {
		return 0, s.internalError("reindex", err)
	}
	err = utils.Concurrency(ctx, REINDEX_WEIGHT, len(subjects), func(ctx context.Context, i int) error {
		return s.indexer.Index(ctx, &subjects[i])
	})
	if err != nil {
		s.logger.Warn("reindex subjects", zap.Error(err))
		return 0, res.NewUnavailableError(err)
	}
	return len(subjects), nil
}
