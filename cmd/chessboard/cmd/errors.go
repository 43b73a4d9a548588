// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import "cogentcore.org/chessboard/base/errors"

var errNoConfig = errors.New("watch: a config file must be given with -c")
