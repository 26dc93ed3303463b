package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListJSONArray(t *testing.T) {
	assert.Equal(t, []string{"python", "aws"}, ParseList(`["python", "aws"]`))
}

func TestParseListEmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, ParseList(""))
	assert.Equal(t, []string{}, ParseList("   "))
	assert.Equal(t, []string{}, ParseList("[]"))
}

func TestParseListCommaFallback(t *testing.T) {
	assert.Equal(t, []string{"python", "aws", "docker"}, ParseList("python, aws , docker"))
}

func TestParseListSingleValueFallback(t *testing.T) {
	assert.Equal(t, []string{"python"}, ParseList("python"))
}

func TestEncodeList(t *testing.T) {
	assert.Equal(t, `["python","aws"]`, EncodeList([]string{"python", "aws"}))
	assert.Equal(t, "[]", EncodeList(nil))
	assert.Equal(t, "[]", EncodeList([]string{}))
}

func TestEncodeParseRoundTripPreservesOrder(t *testing.T) {
	items := []string{"kubernetes", "terraform", "ci/cd"}
	assert.Equal(t, items, ParseList(EncodeList(items)))
}
