package digester

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/digest"
)

// json marshals with sorted map keys so that two logically equal values
// always produce byte-identical documents.
var json = jsoniter.Config{SortMapKeys: true}.Froze()

// JSON wraps v as a Digestible of its canonical JSON encoding. Marshaling
// happens eagerly, so a value that cannot be encoded is rejected here and
// Digest stays total. Map key order is canonicalized; anything else that
// makes marshaling nondeterministic (custom MarshalJSON, floating NaN
// formatting) is the caller's responsibility.
//
// JSON digests are only suitable for equality checks. Lexicographic order
// over JSON text does not track any semantic order of v.
func JSON(v any) (digest.Digestible, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return raw(data), nil
}
