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

package seachemutil

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
)

// maybeDownload checks if the input is an existing file locally.
// If not, it checks if the file is a URL.
// If it's a URL, it downloads the file and
// returns the path to the downloaded file.
// c is a channel across which error and
// logging messages will be sent.
func maybeDownload(path string, c chan string) string {
	// Check if local file exists. If it does, return the given path.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return path
	}

	// If the path starts with one of these prefixes, download the file and
	// return the location it was downloaded to.
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return downloadHTTP(path, c)
	}

	return path
}

// downloadHTTP downloads a file from the specified URL and returns
// the path to the downloaded file, retrying transient failures with
// exponential backoff.
func downloadHTTP(path string, c chan string) string {
	// Prepare a temporary directory for the downloads.
	dir, err := ioutil.TempDir("", "seachem")
	if err != nil {
		panic(fmt.Errorf("seachemutil: failed creating temporary download directory: %v", err))
	}

	out := filepath.Join(dir, filepath.Base(path))
	err = backoff.RetryNotify(
		func() error {
			resp, err := http.Get(path)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				err := fmt.Errorf("seachemutil: downloading %s: %s", path, resp.Status)
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					// Client errors won't go away on retry.
					return backoff.Permanent(err)
				}
				return err
			}
			w, err := os.Create(out)
			if err != nil {
				panic(fmt.Errorf("seachemutil: failed creating file for download: %v", err))
			}
			if _, err := io.Copy(w, resp.Body); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
		backoff.NewExponentialBackOff(),
		func(err error, d time.Duration) {
			c <- fmt.Sprintf("%v: retrying in %v\n", err, d)
		},
	)
	if err != nil {
		c <- err.Error()
		return path
	}
	return out
}
