package contentsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Hình ảnh", "hình-ảnh"},
		{"  Tài liệu   hướng dẫn  ", "tài-liệu-hướng-dẫn"},
		{"Video", "video"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}
