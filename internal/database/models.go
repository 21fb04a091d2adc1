package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Document is one submitted OCR text, identified by the hash of its content.
type Document struct {
	ID        int       `json:"id"`
	Filename  string    `json:"filename,omitempty"`
	DocType   string    `json:"doc_type"`
	TextHash  string    `json:"text_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// Extraction is the pipeline outcome for one document. BLNumber is nil when
// no candidate survived disambiguation; Reason then carries the machine
// reason. Candidates holds the scored trace as stored JSON.
type Extraction struct {
	ID         int             `json:"id"`
	DocumentID int             `json:"document_id"`
	BLNumber   *string         `json:"bl_number"`
	Confidence string          `json:"confidence"`
	Reason     string          `json:"reason,omitempty"`
	Candidates json.RawMessage `json:"candidates"`
	Containers []string        `json:"containers"`
	Seals      []string        `json:"seals"`
	Weight     string          `json:"weight,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// DocumentStore handles database operations for documents
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Create creates a new document
func (s *DocumentStore) Create(doc *Document) error {
	query := `INSERT INTO documents (filename, doc_type, text_hash) VALUES (?, ?, ?)`

	result, err := s.db.Exec(query, doc.Filename, doc.DocType, doc.TextHash)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	doc.ID = int(id)

	created, err := s.GetByID(doc.ID)
	if err != nil {
		return err
	}
	doc.CreatedAt = created.CreatedAt

	return nil
}

// GetByID returns a document by ID
func (s *DocumentStore) GetByID(id int) (*Document, error) {
	query := `SELECT id, filename, doc_type, text_hash, created_at FROM documents WHERE id = ?`

	var doc Document
	err := s.db.QueryRow(query, id).Scan(&doc.ID, &doc.Filename, &doc.DocType,
		&doc.TextHash, &doc.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// GetByTextHash returns the document with the given content hash, or nil when
// the text has never been submitted.
func (s *DocumentStore) GetByTextHash(hash string) (*Document, error) {
	query := `SELECT id, filename, doc_type, text_hash, created_at FROM documents WHERE text_hash = ?`

	var doc Document
	err := s.db.QueryRow(query, hash).Scan(&doc.ID, &doc.Filename, &doc.DocType,
		&doc.TextHash, &doc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Delete deletes a document and, via the foreign key, its extraction
func (s *DocumentStore) Delete(id int) error {
	result, err := s.db.Exec("DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ExtractionStore handles database operations for extractions
type ExtractionStore struct {
	db *sql.DB
}

func NewExtractionStore(db *sql.DB) *ExtractionStore {
	return &ExtractionStore{db: db}
}

// Create creates a new extraction
func (s *ExtractionStore) Create(e *Extraction) error {
	containers, err := json.Marshal(emptyIfNil(e.Containers))
	if err != nil {
		return fmt.Errorf("failed to serialize containers: %w", err)
	}
	seals, err := json.Marshal(emptyIfNil(e.Seals))
	if err != nil {
		return fmt.Errorf("failed to serialize seals: %w", err)
	}

	candidates := e.Candidates
	if len(candidates) == 0 {
		candidates = json.RawMessage("[]")
	}

	query := `INSERT INTO extractions (document_id, bl_number, confidence, reason, candidates, containers, seals, weight)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.Exec(query, e.DocumentID, e.BLNumber, e.Confidence,
		e.Reason, string(candidates), string(containers), string(seals), e.Weight)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = int(id)

	created, err := s.GetByID(e.ID)
	if err != nil {
		return err
	}
	e.CreatedAt = created.CreatedAt

	return nil
}

// GetByID returns an extraction by ID
func (s *ExtractionStore) GetByID(id int) (*Extraction, error) {
	query := `SELECT id, document_id, bl_number, confidence, reason, candidates,
			  containers, seals, weight, created_at
			  FROM extractions WHERE id = ?`

	return s.scanRow(s.db.QueryRow(query, id))
}

// GetByDocumentID returns the extraction belonging to a document, or nil when
// the document has none yet.
func (s *ExtractionStore) GetByDocumentID(documentID int) (*Extraction, error) {
	query := `SELECT id, document_id, bl_number, confidence, reason, candidates,
			  containers, seals, weight, created_at
			  FROM extractions WHERE document_id = ?`

	e, err := s.scanRow(s.db.QueryRow(query, documentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

// GetAll returns all extractions, newest first
func (s *ExtractionStore) GetAll() ([]Extraction, error) {
	query := `SELECT id, document_id, bl_number, confidence, reason, candidates,
			  containers, seals, weight, created_at
			  FROM extractions ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []Extraction
	for rows.Next() {
		e, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, *e)
	}

	return extractions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *ExtractionStore) scanRow(row *sql.Row) (*Extraction, error) {
	return s.scan(row)
}

func (s *ExtractionStore) scan(row rowScanner) (*Extraction, error) {
	var e Extraction
	var candidates, containers, seals string

	err := row.Scan(&e.ID, &e.DocumentID, &e.BLNumber, &e.Confidence, &e.Reason,
		&candidates, &containers, &seals, &e.Weight, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	e.Candidates = json.RawMessage(candidates)
	if err := json.Unmarshal([]byte(containers), &e.Containers); err != nil {
		return nil, fmt.Errorf("failed to deserialize containers: %w", err)
	}
	if err := json.Unmarshal([]byte(seals), &e.Seals); err != nil {
		return nil, fmt.Errorf("failed to deserialize seals: %w", err)
	}

	return &e, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
