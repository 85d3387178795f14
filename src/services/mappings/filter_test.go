package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListFilter(t *testing.T) {
	formID := primitive.NewObjectID()
	templateID := primitive.NewObjectID()

	assert.Equal(t, bson.M{}, ListFilter(nil, nil))

	assert.Equal(t, bson.M{"formId": formID}, ListFilter(&formID, nil))
	assert.Equal(t, bson.M{"templateId": templateID}, ListFilter(nil, &templateID))

	assert.Equal(t,
		bson.M{"formId": formID, "templateId": templateID},
		ListFilter(&formID, &templateID),
	)
}
