package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("acervo-test", "GET /x", "200"))
	RecordRequest("acervo-test", "GET /x", "200", 10*time.Millisecond)
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("acervo-test", "GET /x", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordConnections(t *testing.T) {
	RecordConnections("acervo-test", 7, 3, 4)
	assert.Equal(t, 7.0, testutil.ToFloat64(DatabaseConnections.WithLabelValues("acervo-test", "open")))
	assert.Equal(t, 3.0, testutil.ToFloat64(DatabaseConnections.WithLabelValues("acervo-test", "in_use")))
	assert.Equal(t, 4.0, testutil.ToFloat64(DatabaseConnections.WithLabelValues("acervo-test", "idle")))
}
