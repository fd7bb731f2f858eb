package results

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const (
	textNamePrefix  = "Player: "
	textScorePrefix = "Score: "
)

// FileStore дописывает результаты в текстовый файл.
// Файл открывается и закрывается на каждую запись.
type FileStore struct {
	path   string
	format Format
}

// NewFileStore создаёт FileStore. Пустой format означает FormatText.
func NewFileStore(path string, format Format) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("results file path is empty")
	}

	if format == "" {
		format = FormatText
	}
	parsed, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	return &FileStore{
		path:   path,
		format: parsed,
	}, nil
}

// Location возвращает путь к файлу.
func (s *FileStore) Location() string {
	return s.path
}

// Save дописывает запись в конец файла.
func (s *FileStore) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: failed to open the file %s: %w", ErrSaveFailed, s.path, err)
	}

	if err = s.write(f, rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	return nil
}

func (s *FileStore) write(w io.Writer, rec Record) error {
	if s.format == FormatJSONL {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if strings.ContainsAny(rec.Name, "\r\n") {
		return fmt.Errorf("%w: %q", ErrMultilineName, rec.Name)
	}

	_, err := fmt.Fprintf(w, "%s%s\n%s%d\n", textNamePrefix, rec.Name, textScorePrefix, rec.Score)
	return err
}

// List читает все записи из файла. Отсутствующий файл означает пустой список.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open the file %s: %w", s.path, err)
	}
	defer f.Close()

	if s.format == FormatJSONL {
		return parseJSONL(f)
	}

	return parseText(f)
}

func parseText(r io.Reader) ([]Record, error) {
	var (
		records []Record
		current *Record
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if current == nil {
			name, ok := strings.CutPrefix(line, textNamePrefix)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: expected %q", ErrCorruptRecord, lineNo, textNamePrefix)
			}
			current = &Record{Name: name}
			continue
		}

		raw, ok := strings.CutPrefix(line, textScorePrefix)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected %q", ErrCorruptRecord, lineNo, textScorePrefix)
		}

		score, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptRecord, lineNo, err)
		}

		current.Score = score
		records = append(records, *current)
		current = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if current != nil {
		return nil, fmt.Errorf("%w: record for %q has no score", ErrCorruptRecord, current.Name)
	}

	return records, nil
}

func parseJSONL(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCorruptRecord, lineNo, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return records, nil
}
