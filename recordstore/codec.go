package recordstore

import (
	"bytes"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// codec keeps map keys sorted so that equal collections encode to equal bytes.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary

const indent = "    "

// DecodeDocuments parses a JSON array of objects.
// Empty or whitespace-only input and a JSON null decode to an empty collection.
func DecodeDocuments(data []byte) (Documents, error) {
	docs := make(Documents, 0)

	if len(bytes.TrimSpace(data)) == 0 {
		return docs, nil
	}

	var decoded Documents
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return make(Documents, 0), errors.Join(ErrMalformedCollection, err)
	}

	for _, doc := range decoded {
		if doc == nil {
			return make(Documents, 0), ErrMalformedCollection
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// EncodeDocuments serializes documents as an indented JSON array.
// A nil collection is encoded as an empty array, never as null.
func EncodeDocuments(docs Documents) ([]byte, error) {
	if docs == nil {
		docs = make(Documents, 0)
	}

	data, err := codec.MarshalIndent(docs, "", indent)
	if err != nil {
		return nil, errors.Join(ErrEncodingDocumentsFailed, err)
	}

	return data, nil
}
