package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const SUBJECT_COLLECTION = "subjects"

type Subject struct {
	ID      primitive.ObjectID   `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name    string               `json:"name" bson:"name" example:"Calculus"`
	Teacher string               `json:"teacher" bson:"teacher" example:"Dr. X"`
	Alumni  []primitive.ObjectID `json:"alumni" bson:"alumni" swaggertype:"array,string" example:"63785424db1efbc237faecca"`
	V       int32                `json:"__v" bson:"__v"`
}

// Subject with alumni replaced by the user records
type SubjectWithStudents struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id" example:"637d5de216f58bc8ec7f7f51"`
	Name    string             `json:"name" bson:"name" example:"Calculus"`
	Teacher string             `json:"teacher" bson:"teacher" example:"Dr. X"`
	Alumni  []SimpleUser       `json:"alumni" bson:"alumni"`
	V       int32              `json:"__v" bson:"__v"`
}

// Fields of a partial update, nil means untouched
type SubjectFields struct {
	Name    *string
	Teacher *string
	Alumni  *[]primitive.ObjectID
}

func (fields SubjectFields) toSet() bson.D {
	set := bson.D{}
	if fields.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *fields.Name})
	}
	if fields.Teacher != nil {
		set = append(set, bson.E{Key: "teacher", Value: *fields.Teacher})
	}
	if fields.Alumni != nil {
		alumni := *fields.Alumni
		if alumni == nil {
			alumni = []primitive.ObjectID{}
		}
		set = append(set, bson.E{Key: "alumni", Value: alumni})
	}
	return set
}

type SubjectModel struct {
	collection *mongo.Collection
}

func (subject *SubjectModel) Use() *mongo.Collection {
	return subject.collection
}

func (subject *SubjectModel) GetByID(ctx context.Context, id primitive.ObjectID) *mongo.SingleResult {
	cursor := subject.Use().FindOne(ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (subject *SubjectModel) GetAll(ctx context.Context, filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := subject.Use().Find(ctx, filter, options)
	return cursor, err
}

func (subject *SubjectModel) Aggregate(ctx context.Context, pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := subject.Use().Aggregate(ctx, pipeline)
	return cursor, err
}

func (subject *SubjectModel) NewDocument(ctx context.Context, data interface{}) (*mongo.InsertOneResult, error) {
	result, err := subject.Use().InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func getMatchID(id primitive.ObjectID) bson.D {
	return bson.D{
		{
			Key: "$match",
			Value: bson.M{
				"_id": id,
			},
		},
	}
}

func getLookupAlumni() bson.D {
	return bson.D{
		{
			Key: "$lookup",
			Value: bson.M{
				"from":         USERS_COLLECTION,
				"localField":   "alumni",
				"foreignField": "_id",
				"as":           "alumni",
				"pipeline": bson.A{
					bson.M{
						"$project": bson.M{
							"name":            1,
							"first_lastname":  1,
							"second_lastname": 1,
							"rut":             1,
							"email":           1,
						},
					},
				},
			},
		},
	}
}

func (subject *SubjectModel) Create(ctx context.Context, subjectData *Subject) (*Subject, error) {
	if subjectData.Alumni == nil {
		subjectData.Alumni = []primitive.ObjectID{}
	}
	result, err := subject.NewDocument(ctx, subjectData)
	if err != nil {
		return nil, err
	}
	subjectData.ID = result.InsertedID.(primitive.ObjectID)
	return subjectData, nil
}

// Subject with resolved alumni, nil if it does not exist
func (subject *SubjectModel) GetWithStudents(ctx context.Context, id primitive.ObjectID) (*SubjectWithStudents, error) {
	var subjects []SubjectWithStudents

	cursor, err := subject.Aggregate(ctx, mongo.Pipeline{
		getMatchID(id),
		getLookupAlumni(),
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, nil
	}
	subjects[0].ensureAlumni()
	return &subjects[0], nil
}

func (subject *SubjectModel) GetAllWithStudents(ctx context.Context) ([]SubjectWithStudents, error) {
	subjects := []SubjectWithStudents{}

	cursor, err := subject.Aggregate(ctx, mongo.Pipeline{
		getLookupAlumni(),
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	for i := range subjects {
		subjects[i].ensureAlumni()
	}
	return subjects, nil
}

func (subject *SubjectModel) find(ctx context.Context, filter bson.D) ([]Subject, error) {
	subjects := []Subject{}

	cursor, err := subject.GetAll(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	for i := range subjects {
		subjects[i].ensureAlumni()
	}
	return subjects, nil
}

// Subjects with alumni as ids
func (subject *SubjectModel) GetAllSubjects(ctx context.Context) ([]Subject, error) {
	return subject.find(ctx, bson.D{})
}

func (subject *SubjectModel) GetByTeacher(ctx context.Context, teacher string) ([]Subject, error) {
	return subject.find(ctx, bson.D{
		{
			Key:   "teacher",
			Value: teacher,
		},
	})
}

func (subject *SubjectModel) GetByStudent(ctx context.Context, idStudent primitive.ObjectID) ([]Subject, error) {
	return subject.find(ctx, bson.D{
		{
			Key: "alumni",
			Value: bson.M{
				"$all": bson.A{idStudent},
			},
		},
	})
}

// Apply update to the subject and return the document after it,
// nil if the subject does not exist
func (subject *SubjectModel) findOneAndUpdate(
	ctx context.Context,
	id primitive.ObjectID,
	update bson.D,
) (*Subject, error) {
	var subjectData *Subject

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := subject.Use().FindOneAndUpdate(ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	}, update, opts).Decode(&subjectData)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	subjectData.ensureAlumni()
	return subjectData, nil
}

func (subject *SubjectModel) Rename(ctx context.Context, id primitive.ObjectID, name string) (*Subject, error) {
	return subject.findOneAndUpdate(ctx, id, bson.D{
		{
			Key: "$set",
			Value: bson.M{
				"name": name,
			},
		},
	})
}

func (subject *SubjectModel) Enroll(ctx context.Context, id, idStudent primitive.ObjectID) (*Subject, error) {
	return subject.findOneAndUpdate(ctx, id, bson.D{
		{
			Key: "$addToSet",
			Value: bson.M{
				"alumni": idStudent,
			},
		},
	})
}

func (subject *SubjectModel) Drop(ctx context.Context, id, idStudent primitive.ObjectID) (*Subject, error) {
	return subject.findOneAndUpdate(ctx, id, bson.D{
		{
			Key: "$pull",
			Value: bson.M{
				"alumni": idStudent,
			},
		},
	})
}

func (subject *SubjectModel) Update(ctx context.Context, id primitive.ObjectID, fields SubjectFields) (*Subject, error) {
	set := fields.toSet()
	// An empty $set is rejected by the server
	if len(set) == 0 {
		var subjectData *Subject
		err := subject.GetByID(ctx, id).Decode(&subjectData)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		subjectData.ensureAlumni()
		return subjectData, nil
	}
	return subject.findOneAndUpdate(ctx, id, bson.D{
		{
			Key:   "$set",
			Value: set,
		},
	})
}

func (subject *SubjectModel) Delete(ctx context.Context, id primitive.ObjectID) (*Subject, error) {
	var subjectData *Subject

	err := subject.Use().FindOneAndDelete(ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	}).Decode(&subjectData)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	subjectData.ensureAlumni()
	return subjectData, nil
}

// Students enrolled in the subject, nil if the subject does not exist
func (subject *SubjectModel) GetStudents(ctx context.Context, id primitive.ObjectID) ([]SimpleUser, error) {
	subjectData, err := subject.GetWithStudents(ctx, id)
	if err != nil {
		return nil, err
	}
	if subjectData == nil {
		return nil, nil
	}
	return subjectData.Alumni, nil
}

func (subject *Subject) ensureAlumni() {
	if subject.Alumni == nil {
		subject.Alumni = []primitive.ObjectID{}
	}
}

func (subject *SubjectWithStudents) ensureAlumni() {
	if subject.Alumni == nil {
		subject.Alumni = []SimpleUser{}
	}
}

func NewSubjectModel(collection *mongo.Collection) *SubjectModel {
	return &SubjectModel{
		collection: collection,
	}
}
