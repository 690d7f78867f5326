package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Journal operations written by the memory storage.
const (
	opCreateUser      = "user.create"
	opCreateContent   = "content.create"
	opDeleteContent   = "content.delete"
	opCreateTag       = "tag.create"
	opCreateShareLink = "share.create"
	opDeleteShareLink = "share.delete"
)

// Event is a single line of the journal file.
type Event struct {
	Op      string          `json:"op"`
	Payload json.RawMessage `json:"payload"`
}

// FileStorage is an append-only JSON lines journal.
type FileStorage struct {
	file *os.File
}

// NewFileStorage opens (or creates) the journal at p.
func NewFileStorage(p string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, err
	}

	return &FileStorage{file: file}, nil
}

// Write appends one event to the journal.
func (fs *FileStorage) Write(op string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	b, err := json.Marshal(Event{Op: op, Payload: payload})
	if err != nil {
		return err
	}

	_, err = fs.file.Write(append(b, '\n'))
	return err
}

// Read returns every event in the journal in write order.
func (fs *FileStorage) Read() ([]Event, error) {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var events []Event
	scanner := bufio.NewScanner(fs.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("failed to parse journal line: %w", err)
		}
		events = append(events, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading journal: %w", err)
	}

	return events, nil
}

// Close closes the underlying file.
func (fs *FileStorage) Close() error {
	return fs.file.Close()
}
