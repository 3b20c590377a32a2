// Command hepmatch matches generator-level truth to reconstructed objects
// for every event of a JSON event file.
//
//	hepmatch match events.json --cost deltaR --workers 4
//	hepmatch match events.json --json > matched.json
//	hepmatch costs
//	hepmatch config init --path hepmatch.toml
package main
