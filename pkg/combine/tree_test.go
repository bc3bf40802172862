package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTree(t *testing.T) {
	paths := []string{
		"main.go",
		"pkg/combine/tree.go",
		"pkg/combine/Binary.go",
		"pkg/ignore/ignore.go",
		"README.md",
		"cmd/root.go",
	}

	expected := `./
├── cmd/
│   └── root.go
├── pkg/
│   ├── combine/
│   │   ├── Binary.go
│   │   └── tree.go
│   └── ignore/
│       └── ignore.go
├── main.go
└── README.md
`
	assert.Equal(t, expected, GenerateTree(".", paths))
}

func TestGenerateTree_Empty(t *testing.T) {
	assert.Equal(t, "project/\n", GenerateTree("project/", nil))
}
