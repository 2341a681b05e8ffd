package solvency

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklesum/proofwire"
	"github.com/forestrie/go-merklesum/sumtree"
	"github.com/google/uuid"
)

const (
	TagLeafCount = "leafcount"
	TagDepth     = "depth"
	TagHash      = "hash"
)

type objectStore interface {
	Put(ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option) (*azblob.WriteResponse, error)
}

type PublisherConfig struct {
	// HashName is recorded in the signed state, see fieldhash.ByName.
	HashName string
	// Subject for the CWT claims. Defaults to the root blob path.
	Subject string
}

// Publisher signs liabilities trees and writes the signed root and the
// inclusion proofs to blob storage.
type Publisher struct {
	Cfg    PublisherConfig
	Log    logger.Logger
	Store  objectStore
	Signer RootSigner
	Key    IdentifiableCoseSigner

	now func() time.Time
}

func NewPublisher(
	cfg PublisherConfig, log logger.Logger, store objectStore,
	signer RootSigner, key IdentifiableCoseSigner,
) *Publisher {
	return &Publisher{
		Cfg:    cfg,
		Log:    log,
		Store:  store,
		Signer: signer,
		Key:    key,
		now:    time.Now,
	}
}

// PublishRoot signs the current root of tree and writes it to
// RootBlobPath(treeID). The write fails if a root was already published for
// treeID: a published commitment is never replaced.
func (p *Publisher) PublishRoot(ctx context.Context, treeID uuid.UUID, tree *sumtree.Tree) (LiabilitiesState, error) {
	state := StateFromTree(treeID, p.Cfg.HashName, tree, p.now())

	blobPath := RootBlobPath(treeID)
	subject := p.Cfg.Subject
	if subject == "" {
		subject = blobPath
	}

	data, err := p.Signer.SignTree(p.Key, subject, state)
	if err != nil {
		return LiabilitiesState{}, err
	}

	tags := map[string]string{
		TagLeafCount: strconv.FormatUint(state.LeafCount, 10),
		TagDepth:     strconv.Itoa(int(state.Depth)),
		TagHash:      p.Cfg.HashName,
	}
	_, err = p.Store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data),
		azblob.WithTags(tags),
		// fail without modifying if the blob exists
		azblob.WithEtagNoneMatch("*"),
	)
	if err != nil {
		return LiabilitiesState{}, fmt.Errorf("publishing %s: %w", blobPath, err)
	}

	p.Log.Infof("published liabilities root: tree=%s leaves=%d", treeID, state.LeafCount)
	return state, nil
}

// PublishProofs writes the JSON inclusion proof of each leaf in indices. With
// no indices, every leaf that has not been deleted is published.
func (p *Publisher) PublishProofs(ctx context.Context, treeID uuid.UUID, tree *sumtree.Tree, indices ...int) (int, error) {
	if len(indices) == 0 {
		zero := tree.Zeroes()[0]
		for i, leaf := range tree.Leaves() {
			if !leaf.Equal(zero) {
				indices = append(indices, i)
			}
		}
	}

	for _, i := range indices {
		proof, err := tree.CreateProof(i)
		if err != nil {
			return 0, err
		}
		data, err := proofwire.EncodeJSON(proof)
		if err != nil {
			return 0, err
		}
		blobPath := ProofBlobPath(treeID, uint64(i))
		if _, err = p.Store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data)); err != nil {
			return 0, fmt.Errorf("publishing %s: %w", blobPath, err)
		}
	}

	p.Log.Debugf("published %d inclusion proofs: tree=%s", len(indices), treeID)
	return len(indices), nil
}

// Publish publishes the signed root followed by the proofs of every live
// leaf.
func (p *Publisher) Publish(ctx context.Context, treeID uuid.UUID, tree *sumtree.Tree) (LiabilitiesState, error) {
	state, err := p.PublishRoot(ctx, treeID, tree)
	if err != nil {
		return LiabilitiesState{}, err
	}
	if _, err = p.PublishProofs(ctx, treeID, tree); err != nil {
		return LiabilitiesState{}, err
	}
	return state, nil
}
