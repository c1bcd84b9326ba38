/*
Copyright © 2018 the SeaChem authors.
This file is part of SeaChem.

SeaChem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SeaChem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SeaChem.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command seachem is a command-line interface for the SeaChem seawater
// chemistry model.
package main

import (
	"time"

	"github.com/oceanmodel/seachem/seachemutil"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

func main() {
	if err := seachemutil.Root.Execute(); err != nil {
		logger.WithError(err).Fatal("seachem failed")
	}
}
