package xmlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teranos/xmlprops/markup"
)

func parseXML(t *testing.T, doc string) *markup.Node {
	t.Helper()
	node, err := markup.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return node
}
