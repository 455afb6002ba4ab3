// Copyright 2025 go-vgi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Values is a band or result that round-trips NaN and ±Inf through JSON as
// the strings "NaN", "+Inf" and "-Inf".
type Values []float64

// MarshalJSON implements json.Marshaler.
func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	buf := make([]byte, 0, 2+len(v)*20)
	buf = append(buf, '[')
	for i, x := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		switch {
		case math.IsNaN(x):
			buf = append(buf, `"NaN"`...)
		case math.IsInf(x, 1):
			buf = append(buf, `"+Inf"`...)
		case math.IsInf(x, -1):
			buf = append(buf, `"-Inf"`...)
		default:
			buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		}
	}
	return append(buf, ']'), nil
}

// UnmarshalJSON implements json.Unmarshaler. Elements may be numbers or
// one of the non-finite strings.
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Values, len(raw))
	for i, elem := range raw {
		if len(elem) > 0 && elem[0] == '"' {
			var s string
			if err := json.Unmarshal(elem, &s); err != nil {
				return err
			}
			switch s {
			case "NaN":
				out[i] = math.NaN()
			case "+Inf", "Inf":
				out[i] = math.Inf(1)
			case "-Inf":
				out[i] = math.Inf(-1)
			default:
				return fmt.Errorf("values[%d]: %q is not a number", i, s)
			}
			continue
		}
		if err := json.Unmarshal(elem, &out[i]); err != nil {
			return fmt.Errorf("values[%d]: %w", i, err)
		}
	}
	*v = out
	return nil
}
