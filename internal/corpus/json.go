package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadJSON decodes a JSON array of records from r. The whole batch is
// held in memory. A batch that is not a well-formed record array is fatal.
func LoadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: "decoding record batch", Err: err}
	}
	// Trailing garbage after the array is as malformed as a broken array.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, &LoadError{Code: ErrCodeDecode, Message: "trailing data after record batch"}
	}
	return records, nil
}

// LoadJSONFile reads a record batch from a JSON file.
func LoadJSONFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("corpus file not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("opening corpus file %s", path), Err: err}
	}
	defer f.Close()
	return LoadJSON(f)
}
