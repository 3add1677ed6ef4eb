package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	t.Run("valid hex roundtrip", func(t *testing.T) {
		id := primitive.NewObjectID()
		got := String2ObjectID(ObjectID2String(id))
		assert.Equal(t, id, got)
	})

	t.Run("invalid hex returns NilObjectID", func(t *testing.T) {
		assert.Equal(t, primitive.NilObjectID, String2ObjectID("xyz"))
		assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
	})
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	got := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	assert.Equal(t, []primitive.ObjectID{a, b}, got)
}

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64("42"))
	assert.Equal(t, int64(-7), P2Int64("-7"))
	assert.Equal(t, int64(0), P2Int64("abc"))
	assert.Equal(t, int64(0), P2Int64(""))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 MB", FormatBytes(1536*1024))
	assert.Equal(t, "1.0 GB", FormatBytes(1024*1024*1024))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"image", "video"}, "video"))
	assert.False(t, Contains([]string{"image", "video"}, "audio"))
	assert.False(t, Contains([]string{}, "image"))
	assert.True(t, Contains([]int{1, 2, 3}, 2))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"nguyen.van.a+tag@sub.example.vn",
	}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
	}
	for _, e := range invalid {
		assert.Error(t, ValidateEmail(e), e)
	}
}

func TestToMap(t *testing.T) {
	type sample struct {
		Title  string `bson:"title"`
		Status string `bson:"status"`
	}

	m, err := ToMap(sample{Title: "Tái chế nhựa", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "Tái chế nhựa", m["title"])
	assert.Equal(t, "pending", m["status"])
}

func TestGoProtect(t *testing.T) {
	assert.NotPanics(t, func() {
		GoProtect(func() { panic("boom") })
	})
}
