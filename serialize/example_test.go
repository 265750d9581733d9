package serialize_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/renormlab/serialize"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSerialize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Prepare a mixed research record for a JSON archive. The complex
//	eigenvalue becomes the canonical {real, imag} record; the integer
//	stays integral.
func ExampleSerialize() {
	record := map[string]any{
		"eigenvalue": complex(0.5, -1.0),
		"dimension":  4,
	}

	buf, _ := json.Marshal(serialize.Serialize(record))
	fmt.Println(string(buf))
	// Output:
	// {"dimension":4,"eigenvalue":{"imag":-1,"real":0.5}}
}
