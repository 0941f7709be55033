package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"escolaapi/internal/model"
	"escolaapi/internal/repository"
	"escolaapi/internal/spreadsheet"
	"escolaapi/internal/storage"
)

var (
	ErrReaderNil          = errors.New("reader is nil")
	ErrInvalidSpreadsheet = errors.New("invalid spreadsheet")
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	archiveURLTTL   = 15 * time.Minute
)

// ImportResult summarises a spreadsheet import.
type ImportResult struct {
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	ArchiveKey string `json:"archive_key,omitempty"`
	ArchiveURL string `json:"archive_url,omitempty"`
}

// AlunoService defines the use cases for student records.
type AlunoService interface {
	// List returns every student, newest first.
	List(ctx context.Context) ([]model.Aluno, error)

	// Create stores a new student and returns it with its generated ID.
	Create(ctx context.Context, nome string) (*model.Aluno, error)

	// Import creates one student per name found in an .xlsx workbook.
	// When object storage is configured the workbook is archived first and removed again if the insert fails.
	Import(ctx context.Context, r io.Reader, filename string) (*ImportResult, error)

	// Export writes every student to w as an .xlsx workbook.
	Export(ctx context.Context, w io.Writer) error
}

type alunoService struct {
	repo  repository.AlunoRepository
	store storage.Storage
}

// NewAlunoService constructs a new AlunoService. store may be nil, which disables archiving.
func NewAlunoService(repo repository.AlunoRepository, store storage.Storage) AlunoService {
	return &alunoService{repo: repo, store: store}
}

func (s *alunoService) List(ctx context.Context) ([]model.Aluno, error) {
	return s.repo.List(ctx)
}

func (s *alunoService) Create(ctx context.Context, nome string) (*model.Aluno, error) {
	return s.repo.Create(ctx, nome)
}

func (s *alunoService) Import(ctx context.Context, r io.Reader, filename string) (*ImportResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	names, skipped, err := spreadsheet.ReadNames(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpreadsheet, err)
	}
	res := &ImportResult{Skipped: skipped}
	if len(names) == 0 {
		return res, nil
	}

	if s.store != nil {
		key := filepath.ToSlash(filepath.Join("imports", uuid.NewString()+filepath.Ext(filename)))
		obj, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: xlsxContentType,
			Metadata:    map[string]string{"original-filename": filename},
		})
		if err != nil {
			return nil, fmt.Errorf("archive upload: %w", err)
		}
		res.ArchiveKey = obj.Key
	}

	created, err := s.repo.CreateBatch(ctx, names)
	if err != nil {
		if res.ArchiveKey != "" {
			if delErr := s.store.Delete(ctx, res.ArchiveKey); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	res.Imported = len(created)

	if res.ArchiveKey != "" {
		// best effort: the rows are already committed
		if u, err := s.store.PresignGet(ctx, res.ArchiveKey, archiveURLTTL); err == nil {
			res.ArchiveURL = u
		}
	}
	return res, nil
}

func (s *alunoService) Export(ctx context.Context, w io.Writer) error {
	alunos, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	return spreadsheet.WriteAlunos(w, alunos)
}
