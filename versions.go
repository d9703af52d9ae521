// Copyright (C) 2025 SAGE-X Project
//
// This file is part of changelly-fiat-go.
//
// changelly-fiat-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// changelly-fiat-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with changelly-fiat-go.  If not, see <https://www.gnu.org/licenses/>.

// Package changellyfiat provides version information for changelly-fiat-go.
package changellyfiat

const (
	// Version is the current version of changelly-fiat-go
	Version = "1.0.0"

	// APIVersion is the Changelly Fiat API version this library targets
	// See: https://fiat-api.changelly.com
	APIVersion = "v1"

	// UserAgent is sent with every request issued by the client
	UserAgent = "changelly-fiat-go/" + Version
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion string
	APIVersion     string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion: Version,
		APIVersion:     APIVersion,
	}
}
