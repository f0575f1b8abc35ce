// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var ErrInvalidConfig = errors.New("invalid configuration")
