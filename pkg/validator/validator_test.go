package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	SKU   string `validate:"required,min=3,max=20"`
	Name  string `validate:"required,min=3,max=100"`
	Price int64  `validate:"gte=100"`
}

func TestValidate_Success(t *testing.T) {
	s := testStruct{SKU: "TOY-001", Name: "Red Car", Price: 150}
	err := Validate(s)
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	s := testStruct{Name: "Red Car", Price: 150}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "SKU")
	assert.Equal(t, "is required", fields["SKU"])
}

func TestValidate_MinMax(t *testing.T) {
	s := testStruct{SKU: "ab", Name: "Red Car", Price: 150}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields()["SKU"], "at least 3")
}

func TestValidate_Gte(t *testing.T) {
	s := testStruct{SKU: "TOY-001", Name: "Red Car", Price: 50}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields()["Price"], "100")
}

func TestValidate_MultipleErrors(t *testing.T) {
	s := testStruct{}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "SKU")
	assert.Contains(t, fields, "Name")
}

func TestValidationError_ErrorString(t *testing.T) {
	s := testStruct{}
	err := Validate(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'SKU'")
	assert.Contains(t, err.Error(), "is required")
}

type urlStruct struct {
	Logo *string `validate:"omitempty,url"`
}

func TestValidate_OptionalURL(t *testing.T) {
	assert.NoError(t, Validate(urlStruct{}))

	good := "https://example.com/logo.png"
	assert.NoError(t, Validate(urlStruct{Logo: &good}))

	bad := "not a url"
	err := Validate(urlStruct{Logo: &bad})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be a valid URL", valErr.Fields()["Logo"])
}

type uuidStruct struct {
	CategoryID *string `validate:"omitempty,uuid"`
}

func TestValidate_OptionalUUID(t *testing.T) {
	assert.NoError(t, Validate(uuidStruct{}))

	good := "0b305bcf-4c21-4986-a79e-0a0f4b0c1d2e"
	assert.NoError(t, Validate(uuidStruct{CategoryID: &good}))

	bad := "12345"
	err := Validate(uuidStruct{CategoryID: &bad})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be a valid UUID", valErr.Fields()["CategoryID"])
}
