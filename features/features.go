// Copyright 2025 Darv ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package features

import (
	"github.com/darv-ml/darv/internal/features"
)

// FeatureCount is the length of the normalized feature vector produced
// from a single code analysis.
const FeatureCount = features.FeatureCount

// CodeFeatures holds the raw metrics collected for one code sample.
type CodeFeatures = features.CodeFeatures
