// Package search wraps the Meilisearch products index behind a typed client.
// The index is a derived view of the catalog: documents are keyed by product id
// so pushes are idempotent add-or-replace operations.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"

	"github.com/Jonathan-dev2002/minishop-api/models"
)

const IndexName = "products"

// primaryKey must match the json tag of ProductSearchDocument.ID.
const primaryKey = "id"

// DocumentIndex is the contract the synchronizer and controllers consume.
type DocumentIndex interface {
	UpsertDocuments(ctx context.Context, docs []models.ProductSearchDocument) error
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	DeleteAllAndWait(ctx context.Context) error
	Search(ctx context.Context, q Query) (*Result, error)
	EnsureSettings(ctx context.Context) error
}

type Query struct {
	Query  string
	Filter string
	Sort   []string
	Limit  int64
	Offset int64
}

type Result struct {
	Hits               []models.ProductSearchDocument `json:"hits"`
	EstimatedTotalHits int64                          `json:"estimated_total_hits"`
	ProcessingTimeMs   int64                          `json:"processing_time_ms"`
	Query              string                         `json:"query"`
}

type Client struct {
	client *meilisearch.Client
	index  *meilisearch.Index
}

var _ DocumentIndex = (*Client)(nil)

func NewClient(host, apiKey string) *Client {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})
	return &Client{client: client, index: client.Index(IndexName)}
}

// UpsertDocuments pushes a batch of documents, add-or-replace keyed by id.
func (c *Client) UpsertDocuments(ctx context.Context, docs []models.ProductSearchDocument) error {
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.index.AddDocuments(docs, primaryKey); err != nil {
		return fmt.Errorf("upsert %d documents: %w", len(docs), err)
	}
	return nil
}

func (c *Client) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.index.DeleteDocument(id.String()); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	return nil
}

// DeleteAllAndWait wipes the index and blocks until Meilisearch confirms the
// task finished. Repopulating before the wipe completes would interleave old
// and new documents, so callers must not proceed on error.
func (c *Client) DeleteAllAndWait(ctx context.Context) error {
	taskInfo, err := c.index.DeleteAllDocuments()
	if err != nil {
		return fmt.Errorf("delete all documents: %w", err)
	}
	task, err := c.client.WaitForTask(taskInfo.TaskUID, meilisearch.WaitParams{
		Context:  ctx,
		Interval: 100 * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("wait for delete-all task %d: %w", taskInfo.TaskUID, err)
	}
	if task.Status != meilisearch.TaskStatusSucceeded {
		return fmt.Errorf("delete-all task %d finished with status %s", taskInfo.TaskUID, task.Status)
	}
	return nil
}

func (c *Client) Search(ctx context.Context, q Query) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	request := &meilisearch.SearchRequest{
		Limit:  q.Limit,
		Offset: q.Offset,
		Sort:   q.Sort,
	}
	if q.Filter != "" {
		request.Filter = q.Filter
	}
	resp, err := c.index.Search(q.Query, request)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Query, err)
	}

	// Hits come back untyped; round-trip through JSON to get documents.
	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, fmt.Errorf("marshal hits: %w", err)
	}
	var hits []models.ProductSearchDocument
	if err := json.Unmarshal(raw, &hits); err != nil {
		return nil, fmt.Errorf("unmarshal hits: %w", err)
	}

	return &Result{
		Hits:               hits,
		EstimatedTotalHits: resp.EstimatedTotalHits,
		ProcessingTimeMs:   resp.ProcessingTimeMs,
		Query:              resp.Query,
	}, nil
}

// EnsureSettings applies the searchable/filterable/sortable attribute lists.
// Safe to call on every boot; Meilisearch treats it as an idempotent update.
func (c *Client) EnsureSettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	settings := &meilisearch.Settings{
		SearchableAttributes: []string{"name", "description"},
		FilterableAttributes: []string{"category_id", "price", "id"},
		SortableAttributes:   []string{"price"},
	}
	if _, err := c.index.UpdateSettings(settings); err != nil {
		return fmt.Errorf("update index settings: %w", err)
	}
	return nil
}
