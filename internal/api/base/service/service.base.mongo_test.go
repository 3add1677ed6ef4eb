package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type defaultTagModel struct {
	Name     string `bson:"name"`
	IsActive bool   `bson:"isActive" default:"true"`
	Counter  int64  `bson:"counter" default:"7"`
	Status   string `bson:"status" default:"pending"`
	Ignored  string `bson:"-" default:"x"`
}

func TestToUpdateData(t *testing.T) {
	t.Run("pointer passthrough", func(t *testing.T) {
		in := &UpdateData{Set: map[string]interface{}{"a": 1}}
		out, err := ToUpdateData(in)
		require.NoError(t, err)
		assert.Same(t, in, out)
	})

	t.Run("value passthrough", func(t *testing.T) {
		in := UpdateData{Inc: map[string]interface{}{"viewCount": 1}}
		out, err := ToUpdateData(in)
		require.NoError(t, err)
		assert.Equal(t, in.Inc, out.Inc)
	})

	t.Run("plain map wraps in $set", func(t *testing.T) {
		out, err := ToUpdateData(map[string]interface{}{"title": "Rừng ngập mặn"})
		require.NoError(t, err)
		assert.Equal(t, "Rừng ngập mặn", out.Set["title"])
		assert.Nil(t, out.Unset)
	})
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))

	assert.Equal(t, true, defaults["isActive"])
	assert.Equal(t, int64(7), defaults["counter"])
	assert.Equal(t, "pending", defaults["status"])

	// Field không có bson tag hợp lệ bị bỏ qua
	assert.NotContains(t, defaults, "Ignored")
	assert.NotContains(t, defaults, "name")
}

func TestApplyInsertDefaultsToModel(t *testing.T) {
	t.Run("zero fields get defaults", func(t *testing.T) {
		m := defaultTagModel{Name: "x"}
		applyInsertDefaultsToModel(&m)

		assert.True(t, m.IsActive)
		assert.Equal(t, int64(7), m.Counter)
		assert.Equal(t, "pending", m.Status)
	})

	t.Run("non-zero fields untouched", func(t *testing.T) {
		m := defaultTagModel{Counter: 42, Status: "approved"}
		applyInsertDefaultsToModel(&m)

		assert.Equal(t, int64(42), m.Counter)
		assert.Equal(t, "approved", m.Status)
	})

	t.Run("non-pointer input is a no-op", func(t *testing.T) {
		m := defaultTagModel{}
		applyInsertDefaultsToModel(m)
		assert.False(t, m.IsActive)
	})
}

func TestParseDefaultValue(t *testing.T) {
	assert.Equal(t, true, parseDefaultValue("true", reflect.TypeOf(false)))
	assert.Equal(t, false, parseDefaultValue("không", reflect.TypeOf(false)))
	assert.Equal(t, int64(10), parseDefaultValue("10", reflect.TypeOf(int64(0))))
	assert.Equal(t, "draft", parseDefaultValue("draft", reflect.TypeOf("")))
	assert.Nil(t, parseDefaultValue("1.5", reflect.TypeOf(1.5)))
}
