/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertToFloat64(t *testing.T) {
	for _, tc := range []struct {
		input    interface{}
		expected float64
	}{
		{float64(3.5), 3.5},
		{float32(2), 2.0},
		{int(7), 7.0},
		{int64(-4), -4.0},
		{uint32(12), 12.0},
		{"14.25", 14.25},
	} {
		value, err := ConvertToFloat64(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expected, value)
	}

	_, err := ConvertToFloat64("not-a-number")
	require.Error(t, err)
	_, err = ConvertToFloat64([]string{"nope"})
	require.Error(t, err)
	_, err = ConvertToFloat64(nil)
	require.Error(t, err)
}

func TestConvertToInt(t *testing.T) {
	value, err := ConvertToInt(int64(42))
	require.NoError(t, err)
	require.Equal(t, 42, value)

	value, err = ConvertToInt("17")
	require.NoError(t, err)
	require.Equal(t, 17, value)

	value, err = ConvertToInt(float64(3.9))
	require.NoError(t, err)
	require.Equal(t, 3, value)

	_, err = ConvertToInt(struct{}{})
	require.Error(t, err)
}

func TestConvertToBool(t *testing.T) {
	value, err := ConvertToBool(true)
	require.NoError(t, err)
	require.True(t, value)

	value, err = ConvertToBool("true")
	require.NoError(t, err)
	require.True(t, value)

	value, err = ConvertToBool("false")
	require.NoError(t, err)
	require.False(t, value)

	_, err = ConvertToBool(1.0)
	require.Error(t, err)
}

func TestConvertToString(t *testing.T) {
	require.Equal(t, "abc", ConvertToString("abc"))
	require.Equal(t, "true", ConvertToString(true))
	require.Equal(t, "1.5", ConvertToString(1.5))
	require.Equal(t, "42", ConvertToString(42))
	require.Equal(t, "-9", ConvertToString(int64(-9)))
}
