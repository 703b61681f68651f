// SPDX-License-Identifier: MIT

package addability

import "errors"

// ErrLengthMismatch indicates that the catalog and the initial selection
// differ in length.
var ErrLengthMismatch = errors.New("addability: catalog and selection lengths differ")
