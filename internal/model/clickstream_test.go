package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDetailsScanValue(t *testing.T) {
	details := EventDetails{"courseId": "12", "score": float64(80)}

	v, err := details.Value()
	require.NoError(t, err)

	var decoded EventDetails
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, details, decoded)
}

func TestEventDetailsValueNil(t *testing.T) {
	var details EventDetails
	v, err := details.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestEventDetailsCourseID(t *testing.T) {
	assert.Equal(t, "7", EventDetails{"courseId": "7"}.CourseID())
	// 缺失或非字符串时返回空串
	assert.Equal(t, "", EventDetails{}.CourseID())
	assert.Equal(t, "", EventDetails{"courseId": 7}.CourseID())
	assert.Equal(t, "", EventDetails(nil).CourseID())
}
