package cmd

import (
	"encoding/json"
	"fmt"
)

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
