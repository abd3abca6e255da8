package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIndexes(t *testing.T) {
	keys := map[string]bson.D{}
	for _, ix := range Indexes() {
		require.NotNil(t, ix.Model.Options, ix.Collection)
		keys[ix.Collection] = ix.Model.Keys.(bson.D)
	}
	assert.Equal(t, map[string]bson.D{
		"users":    {{Key: "email", Value: 1}},
		"profiles": {{Key: "user", Value: 1}},
		"posts":    {{Key: "date", Value: -1}, {Key: "_id", Value: -1}},
	}, keys)
}
