// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/landlordos/property-service/cmd"

func main() {
	cmd.Execute()
}
