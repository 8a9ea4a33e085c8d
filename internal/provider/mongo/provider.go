// Package mongo is the MongoDB DataProvider backend. Each logical table
// lives in its own collection; the provider is a thin wrapper in front of
// them. Constructed without a URI it stays unbound and fails every call
// fast with a NotConfiguredError instead of pretending to have no data.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"study-service/internal/provider"
)

const backendName = "mongo"

type Provider struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// New connects to MongoDB. An empty URI yields an unbound provider whose
// operations all fail with NotConfigured; the factory relies on this so a
// misconfigured deployment is loud rather than silently empty.
func New(ctx context.Context, uri, dbName string) (*Provider, error) {
	p := &Provider{now: time.Now}
	if uri == "" {
		return p, nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	p.client = client
	p.db = client.Database(dbName)
	return p, nil
}

// guard returns the NotConfigured failure for an unbound provider.
func (p *Provider) guard(operation string) error {
	if p.db == nil {
		return &provider.NotConfiguredError{Backend: backendName, Operation: operation}
	}
	return nil
}

func (p *Provider) col(name string) *mongo.Collection {
	return p.db.Collection(name)
}

// WaitReady is immediate: mongo has no asynchronous seed phase.
func (p *Provider) WaitReady(ctx context.Context) error {
	return p.guard("WaitReady")
}

func (p *Provider) Close(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Disconnect(ctx)
}
