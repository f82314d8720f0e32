// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package multierror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	errs := Error{
		fmt.Errorf("2"),
		fmt.Errorf("1"),
		fmt.Errorf("2"),
		fmt.Errorf("1"),
		fmt.Errorf("3"),
	}

	unique := errs.Unique()

	require.Len(t, unique, 3)
	require.Len(t, errs, 5)
	assert.Equal(t, "[0] 2\n[1] 1\n[2] 3", unique.Error())
}

func TestErrorOrNil(t *testing.T) {
	var errs Error
	assert.NoError(t, errs.ErrorOrNil())

	errs = append(errs, fmt.Errorf("reading config: %w", fs.ErrNotExist))
	err := errs.ErrorOrNil()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
