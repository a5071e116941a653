package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	body := `<html>
<head><title>Ignored</title><style>body { color: red; }</style></head>
<body>
  <h1>Welcome</h1>
  <script>console.log("tracking");</script>
  <p>First paragraph.</p>
  <div>   Second   chunk  with   spacing </div>
</body>
</html>`

	text := Text(body)

	assert.Contains(t, text, "Welcome")
	assert.Contains(t, text, "First paragraph.")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
	// head content is outside body
	assert.NotContains(t, text, "Ignored")

	// no blank lines, no leading/trailing space on any line
	for _, line := range strings.Split(text, "\n") {
		assert.NotEmpty(t, line)
		assert.Equal(t, line, strings.TrimSpace(line))
	}
}

func TestTextSplitsDoubleSpacedPhrases(t *testing.T) {
	text := Text("<body><p>left  right</p></body>")
	assert.Equal(t, "left\nright", text)
}

func TestTextWithoutBody(t *testing.T) {
	// html.Parse synthesizes a body, so even fragments render
	text := Text("just some text")
	assert.Equal(t, "just some text", text)
}

func TestTextEmpty(t *testing.T) {
	assert.Equal(t, "", Text(""))
}
