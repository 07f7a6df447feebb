package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	assert.Equal(t, "5184K", bodyLimit(5242880+requestBodySlack))
	assert.Equal(t, "1000B", bodyLimit(1000))
}
