package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"confexport/pkg/domain"
)

// Blocks is the fixed cycle of schedule-block names, in schedule order.
// Every talk occupies two blocks exactly half a cycle apart, so the order
// here is load-bearing and not configurable.
var Blocks = []string{
	"alfa", "bravo", "charlie", "delta", "echo", "foxtrot",
	"golf", "hotel", "india", "juliett", "kilo", "lima",
}

// blockOffset is the distance between a talk's two blocks in the cycle.
const blockOffset = 6

// BlockIndex returns the position of a block name in the cycle, or -1 when
// the name is not a known block.
func BlockIndex(name string) int {
	for i, b := range Blocks {
		if b == name {
			return i
		}
	}
	return -1
}

// ValidateBlocks checks that blocks names exactly two known schedule blocks
// with the second half a cycle after the first (wrap-aware). file is used
// for error context only.
func ValidateBlocks(file string, blocks []string) error {
	if len(blocks) != 2 {
		return &domain.ValidationError{
			File:   file,
			Field:  "blocks",
			Value:  fmt.Sprintf("%v", blocks),
			Reason: fmt.Sprintf("expected 2 schedule blocks, got %d", len(blocks)),
		}
	}
	first := BlockIndex(blocks[0])
	if first < 0 {
		return &domain.ValidationError{File: file, Field: "blocks", Value: blocks[0], Reason: "unknown schedule block"}
	}
	second := BlockIndex(blocks[1])
	if second < 0 {
		return &domain.ValidationError{File: file, Field: "blocks", Value: blocks[1], Reason: "unknown schedule block"}
	}
	if second != (first+blockOffset)%len(Blocks) {
		return &domain.ValidationError{
			File:   file,
			Field:  "blocks",
			Value:  fmt.Sprintf("%s,%s", blocks[0], blocks[1]),
			Reason: fmt.Sprintf("second block must be %d positions after the first", blockOffset),
		}
	}
	return nil
}

// Times maps schedule blocks to their clock time.
type Times struct {
	byBlock map[string]string
}

// NewTimes builds a Times table from an in-memory mapping.
func NewTimes(byBlock map[string]string) *Times {
	return &Times{byBlock: byBlock}
}

// LoadTimes reads the block-to-time reference file.
func LoadTimes(path string) (*Times, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read block times: %w", err)
	}
	var byBlock map[string]string
	if err := yaml.Unmarshal(raw, &byBlock); err != nil {
		return nil, fmt.Errorf("parse block times %s: %w", path, err)
	}
	return NewTimes(byBlock), nil
}

// TimeFor returns the clock time of a schedule block.
func (t *Times) TimeFor(block string) (string, error) {
	v, ok := t.byBlock[block]
	if !ok {
		return "", fmt.Errorf("no time for schedule block %q", block)
	}
	return v, nil
}

// Sessions maps schedule blocks to session names. A block entry is either a
// session name that applies to all tracks, or a per-track mapping.
type Sessions struct {
	byBlock map[string]any
}

// NewSessions builds a Sessions table from an in-memory mapping. Values must
// be strings or track-keyed maps.
func NewSessions(byBlock map[string]any) *Sessions {
	return &Sessions{byBlock: byBlock}
}

// LoadSessions reads the session-name reference file.
func LoadSessions(path string) (*Sessions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sessions: %w", err)
	}
	var byBlock map[string]any
	if err := yaml.Unmarshal(raw, &byBlock); err != nil {
		return nil, fmt.Errorf("parse sessions %s: %w", path, err)
	}
	return NewSessions(byBlock), nil
}

// SessionFor resolves the session name for a block, re-indexing by track when
// the block carries a per-track mapping. Missing keys are errors, never
// defaults.
func (s *Sessions) SessionFor(block, track string) (string, error) {
	v, ok := s.byBlock[block]
	if !ok {
		return "", fmt.Errorf("no session for schedule block %q", block)
	}
	switch entry := v.(type) {
	case string:
		return entry, nil
	case map[string]any:
		tv, ok := entry[track]
		if !ok {
			return "", fmt.Errorf("no session for schedule block %q track %q", block, track)
		}
		name, ok := tv.(string)
		if !ok {
			return "", fmt.Errorf("session for block %q track %q is %T, expected string", block, track, tv)
		}
		return name, nil
	default:
		return "", fmt.Errorf("session entry for block %q is %T, expected string or track map", block, v)
	}
}
