package logstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteJSON writes entries as JSON lines, one entry per line.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	for i, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}
	return nil
}

// ReadJSON reads JSON lines produced by WriteJSON.
func ReadJSON(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	entries := []Entry{}
	for {
		var e Entry
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
	}
}

// WriteCompressed writes entries as a zstd compressed JSON lines stream.
func WriteCompressed(w io.Writer, entries []Entry) error {
	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating zstd encoder: %w", err)
	}
	if err := WriteJSON(encoder, entries); err != nil {
		encoder.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing zstd encoder: %w", err)
	}
	return nil
}

// ReadCompressed reads a stream written by WriteCompressed.
func ReadCompressed(r io.Reader) ([]Entry, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()
	return ReadJSON(decoder)
}

// Load appends entries to a store in order.
func Load(s Store, entries []Entry) {
	for _, e := range entries {
		s.Append(e)
	}
}
