package main

import "figma-asset-downloader/cmd"

func main() {
	cmd.Execute()
}
