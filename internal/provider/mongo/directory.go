package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"study-service/internal/models"
)

func (p *Provider) GetCurrentUser(ctx context.Context) (*models.User, error) {
	if err := p.guard("GetCurrentUser"); err != nil {
		return nil, err
	}
	var user models.User
	err := p.col("users").FindOne(ctx, bson.M{}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *Provider) GetUsers(ctx context.Context, campusID string) ([]models.User, error) {
	if err := p.guard("GetUsers"); err != nil {
		return nil, err
	}
	filter := bson.M{}
	if campusID != "" {
		filter["campus_id"] = campusID
	}
	var users []models.User
	if err := p.findAll(ctx, "users", filter, func(cur *mongo.Cursor) error {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return err
		}
		users = append(users, u)
		return nil
	}); err != nil {
		return nil, err
	}
	return users, nil
}

func (p *Provider) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	if err := p.guard("GetCampuses"); err != nil {
		return nil, err
	}
	var campuses []models.Campus
	if err := p.findAll(ctx, "campuses", bson.M{}, func(cur *mongo.Cursor) error {
		var c models.Campus
		if err := cur.Decode(&c); err != nil {
			return err
		}
		campuses = append(campuses, c)
		return nil
	}); err != nil {
		return nil, err
	}
	return campuses, nil
}

func (p *Provider) GetClasses(ctx context.Context, campusID string) ([]models.Class, error) {
	if err := p.guard("GetClasses"); err != nil {
		return nil, err
	}
	filter := bson.M{}
	if campusID != "" {
		filter["campus_id"] = campusID
	}
	var classes []models.Class
	if err := p.findAll(ctx, "classes", filter, func(cur *mongo.Cursor) error {
		var c models.Class
		if err := cur.Decode(&c); err != nil {
			return err
		}
		classes = append(classes, c)
		return nil
	}); err != nil {
		return nil, err
	}
	return classes, nil
}

func (p *Provider) GetClassEnrollments(ctx context.Context, userID string) ([]models.ClassEnrollment, error) {
	if err := p.guard("GetClassEnrollments"); err != nil {
		return nil, err
	}
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	var enrollments []models.ClassEnrollment
	if err := p.findAll(ctx, "enrollments", filter, func(cur *mongo.Cursor) error {
		var e models.ClassEnrollment
		if err := cur.Decode(&e); err != nil {
			return err
		}
		enrollments = append(enrollments, e)
		return nil
	}); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (p *Provider) GetBenchmarks(ctx context.Context, category string) ([]models.Benchmark, error) {
	if err := p.guard("GetBenchmarks"); err != nil {
		return nil, err
	}
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	var benchmarks []models.Benchmark
	if err := p.findAll(ctx, "benchmarks", filter, func(cur *mongo.Cursor) error {
		var b models.Benchmark
		if err := cur.Decode(&b); err != nil {
			return err
		}
		benchmarks = append(benchmarks, b)
		return nil
	}); err != nil {
		return nil, err
	}
	return benchmarks, nil
}

func (p *Provider) findAll(ctx context.Context, collection string, filter bson.M, decode func(*mongo.Cursor) error) error {
	cur, err := p.col(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		if err := decode(cur); err != nil {
			return err
		}
	}
	return cur.Err()
}
