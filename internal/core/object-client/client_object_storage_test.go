package objectclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObjectURI(t *testing.T) {
	tests := []struct {
		in     string
		bucket string
		key    string
		ok     bool
	}{
		{in: "s3://reports/2024/ct-head.pdf", bucket: "reports", key: "2024/ct-head.pdf", ok: true},
		{in: "https://reports.s3.us-east-2.amazonaws.com/users/1/mri.docx", bucket: "reports", key: "users/1/mri.docx", ok: true},
		{in: "s3://reports", ok: false},
		{in: "s3:///key.pdf", ok: false},
		{in: "/tmp/report.pdf", ok: false},
		{in: "https://example.com/report.pdf", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bucket, key, ok := ParseObjectURI(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
