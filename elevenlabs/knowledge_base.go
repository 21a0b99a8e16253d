package elevenlabs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/s0up4200/convai/client"
)

// KnowledgeBaseService manages documents agents can retrieve from, and
// their RAG indexes
type KnowledgeBaseService struct{ service }

// Knowledge base document types accepted by ListKnowledgeBaseParams.Types
const (
	DocumentTypeFile = "file"
	DocumentTypeURL  = "url"
	DocumentTypeText = "text"
)

// ListKnowledgeBaseParams filters the document listing
type ListKnowledgeBaseParams struct {
	Pagination
	Sorting
	ShowOnlyOwnedDocuments *bool
	Types                  []string
}

func (p ListKnowledgeBaseParams) query() url.Values {
	q := url.Values{}
	p.Pagination.apply(q)
	p.Sorting.apply(q)
	if p.ShowOnlyOwnedDocuments != nil {
		q.Set("show_only_owned_documents", boolString(*p.ShowOnlyOwnedDocuments))
	}
	for _, t := range p.Types {
		q.Add("types", t)
	}
	return q
}

// List returns a page of knowledge base documents
func (s *KnowledgeBaseService) List(ctx context.Context, params ListKnowledgeBaseParams) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/knowledge-base", nil, params.query())
}

// GetDocument retrieves a document's metadata
func (s *KnowledgeBaseService) GetDocument(ctx context.Context, documentID string) (Object, error) {
	if documentID == "" {
		return nil, missing("documentation_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/knowledge-base/"+esc(documentID), nil, nil)
}

// UpdateDocument renames a document
func (s *KnowledgeBaseService) UpdateDocument(ctx context.Context, documentID, name string) (Object, error) {
	if documentID == "" {
		return nil, missing("documentation_id")
	}
	return s.object(ctx, http.MethodPatch, "/v1/convai/knowledge-base/"+esc(documentID), Object{"name": name}, nil)
}

// DeleteDocument removes a document. With force, it is also detached from
// every agent using it.
func (s *KnowledgeBaseService) DeleteDocument(ctx context.Context, documentID string, force bool) error {
	if documentID == "" {
		return missing("documentation_id")
	}
	var q url.Values
	if force {
		q = url.Values{"force": {"true"}}
	}
	return s.delete(ctx, "/v1/convai/knowledge-base/"+esc(documentID), q)
}

// CreateFromURL scrapes a web page into a document
func (s *KnowledgeBaseService) CreateFromURL(ctx context.Context, pageURL, name string) (Object, error) {
	body := newPayload(nil).set("url", pageURL).set("name", name)
	return s.object(ctx, http.MethodPost, "/v1/convai/knowledge-base/url", body, nil)
}

// CreateFromText stores raw text as a document
func (s *KnowledgeBaseService) CreateFromText(ctx context.Context, text, name string) (Object, error) {
	body := newPayload(nil).set("text", text).set("name", name)
	return s.object(ctx, http.MethodPost, "/v1/convai/knowledge-base/text", body, nil)
}

// CreateFromFile uploads a file (pdf, txt, docx, html, epub) as a document
func (s *KnowledgeBaseService) CreateFromFile(ctx context.Context, filename string, content io.Reader, name string) (Object, error) {
	form := client.NewForm().
		AddFile("file", filename, content).
		AddFieldIf("name", name)
	return s.object(ctx, http.MethodPost, "/v1/convai/knowledge-base/file", form, nil)
}

// ComputeRAGIndex starts (or reports) RAG indexing of a document with the
// given embedding model
func (s *KnowledgeBaseService) ComputeRAGIndex(ctx context.Context, documentID, model string) (Object, error) {
	if documentID == "" {
		return nil, missing("documentation_id")
	}
	path := fmt.Sprintf("/v1/convai/knowledge-base/%s/rag-index", esc(documentID))
	return s.object(ctx, http.MethodPost, path, Object{"model": model}, nil)
}

// GetRAGIndex lists the RAG indexes of a document
func (s *KnowledgeBaseService) GetRAGIndex(ctx context.Context, documentID string) (Object, error) {
	if documentID == "" {
		return nil, missing("documentation_id")
	}
	path := fmt.Sprintf("/v1/convai/knowledge-base/%s/rag-index", esc(documentID))
	return s.object(ctx, http.MethodGet, path, nil, nil)
}

// RAGIndexOverview summarises RAG index usage across the workspace
func (s *KnowledgeBaseService) RAGIndexOverview(ctx context.Context) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/knowledge-base/rag-index", nil, nil)
}

// DeleteRAGIndex removes one RAG index of a document
func (s *KnowledgeBaseService) DeleteRAGIndex(ctx context.Context, documentID, ragIndexID string) (Object, error) {
	if err := requireIDs("documentation_id", documentID, "rag_index_id", ragIndexID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/v1/convai/knowledge-base/%s/rag-index/%s", esc(documentID), esc(ragIndexID))
	return s.object(ctx, http.MethodDelete, path, nil, nil)
}

// GetDependentAgents lists the agents that use a document
func (s *KnowledgeBaseService) GetDependentAgents(ctx context.Context, documentID string, page Pagination) (Object, error) {
	if documentID == "" {
		return nil, missing("documentation_id")
	}
	q := url.Values{}
	page.apply(q)
	path := fmt.Sprintf("/v1/convai/knowledge-base/%s/dependent-agents", esc(documentID))
	return s.object(ctx, http.MethodGet, path, nil, q)
}

// GetContent downloads the document's stored content byte-for-byte
func (s *KnowledgeBaseService) GetContent(ctx context.Context, documentID string) ([]byte, error) {
	if documentID == "" {
		return nil, missing("documentation_id")
	}
	path := fmt.Sprintf("/v1/convai/knowledge-base/%s/content", esc(documentID))
	return s.raw(ctx, http.MethodGet, path, nil, nil)
}

// GetChunk retrieves one indexed chunk of a document
func (s *KnowledgeBaseService) GetChunk(ctx context.Context, documentID, chunkID string) (Object, error) {
	if err := requireIDs("documentation_id", documentID, "chunk_id", chunkID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/v1/convai/knowledge-base/%s/chunk/%s", esc(documentID), esc(chunkID))
	return s.object(ctx, http.MethodGet, path, nil, nil)
}
