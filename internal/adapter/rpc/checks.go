package rpc

import (
	"context"
	"fmt"
	"strings"

	"node-finder/internal/domain"
	"node-finder/internal/domain/entity"
	"node-finder/internal/pkg/apperrors"
)

// check is one named step of the validation pipeline.
type check struct {
	name string
	run  func(ctx context.Context, c Caller, req entity.ValidationRequest, out *checkResult) error
}

// checkResult collects what the checks observed.
type checkResult struct {
	blockNumber uint64
}

// validationPipeline runs in order and stops at the first failure.
var validationPipeline = []check{
	{name: "identity", run: runIdentityCheck},
	{name: "integrity", run: runIntegrityCheck},
	{name: "freshness", run: runFreshnessCheck},
}

func runPipeline(ctx context.Context, c Caller, req entity.ValidationRequest) (checkResult, error) {
	var out checkResult
	for _, step := range validationPipeline {
		if err := step.run(ctx, c, req, &out); err != nil {
			return checkResult{}, fmt.Errorf("%s check: %w", step.name, err)
		}
	}
	return out, nil
}

func runIdentityCheck(ctx context.Context, c Caller, req entity.ValidationRequest, _ *checkResult) error {
	return checkChainID(ctx, c, req.ChainID)
}

func runIntegrityCheck(ctx context.Context, c Caller, req entity.ValidationRequest, _ *checkResult) error {
	return checkGenesis(ctx, c, req.GenesisHash)
}

func runFreshnessCheck(ctx context.Context, c Caller, req entity.ValidationRequest, out *checkResult) error {
	height, err := checkSync(ctx, c, req.ReferenceHeight, req.SyncTolerance)
	if err != nil {
		return err
	}
	out.blockNumber = height
	return nil
}

// checkChainID guards against endpoints serving another network.
func checkChainID(ctx context.Context, c Caller, expected uint64) error {
	resp, err := c.Call(ctx, ChainIDRequest())
	if err != nil {
		return err
	}
	chainID, err := resp.Quantity()
	if err != nil {
		return fmt.Errorf("no chain id in response: %w", err)
	}
	if chainID != expected {
		return domain.NewValidationError(domain.ReasonChainIDMismatch, "expected %d, got %d", expected, chainID)
	}
	return nil
}

// checkGenesis compares block 0's hash with the chain's known genesis hash.
// It catches endpoints that report the right chain id without serving that chain's history.
// An empty expected hash skips the check.
func checkGenesis(ctx context.Context, c Caller, expected string) error {
	if expected == "" {
		return nil
	}
	resp, err := c.Call(ctx, GetBlockByNumberRequest(0))
	if err != nil {
		return err
	}
	block, err := resp.Block()
	if err != nil {
		return fmt.Errorf("no genesis block in response: %w", err)
	}
	if block == nil || block.Hash == "" {
		return fmt.Errorf("%w: no genesis hash in response", apperrors.ErrParse)
	}
	if !strings.EqualFold(block.Hash, expected) {
		return domain.NewValidationError(domain.ReasonGenesisMismatch, "expected %s, got %s", expected, block.Hash)
	}
	return nil
}

// checkSync returns the endpoint height if it is within tolerance of the reference.
func checkSync(ctx context.Context, c Caller, reference, tolerance uint64) (uint64, error) {
	resp, err := c.Call(ctx, BlockNumberRequest())
	if err != nil {
		return 0, err
	}
	height, err := resp.Quantity()
	if err != nil {
		return 0, fmt.Errorf("no block number in response: %w", err)
	}
	if diff := absDiff(reference, height); diff > tolerance {
		return 0, domain.NewValidationError(domain.ReasonNotSynced,
			"%d blocks from reference %d (tolerance %d)", diff, reference, tolerance)
	}
	return height, nil
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
