package sumtreetesting

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/datatrails/go-datatrails-common/azblob"
)

var ErrBlobExists = errors.New("sumtreetesting: blob exists")

// MemoryStore is a write once in memory stand in for a blob store. Every Put
// behaves as if conditioned on the blob not existing.
type MemoryStore struct {
	mu    sync.Mutex
	Blobs map[string][]byte
	// Opts records how many options each Put was given, by path.
	Opts map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Blobs: map[string][]byte{}, Opts: map[string]int{}}
}

func (s *MemoryStore) Put(
	_ context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option,
) (*azblob.WriteResponse, error) {
	defer source.Close()

	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Blobs[identity]; ok {
		return nil, ErrBlobExists
	}
	s.Blobs[identity] = data
	s.Opts[identity] = len(opts)
	return &azblob.WriteResponse{}, nil
}
