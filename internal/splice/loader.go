package splice

import (
	"encoding/json"
	"os"
)

// LoadFromFile loads a connection definition from a JSON file
func LoadFromFile(filepath string) (*Connection, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var conn Connection
	if err := json.Unmarshal(data, &conn); err != nil {
		return nil, err
	}

	if err := conn.ResolveMaterials(); err != nil {
		return nil, err
	}
	if err := conn.Validate(); err != nil {
		return nil, err
	}

	return &conn, nil
}
