// Package way is the Go client for the query router API.
//
// The client sends free-text queries to a running server and returns either a
// direct answer or a list of video results:
//
//	client := way.New("http://localhost:8080")
//	res, err := client.Search(ctx, "best pasta recipes")
//	if err != nil { ... }
//	if res.Answer != "" {
//		fmt.Println(res.Answer)
//	}
//	for _, v := range res.Videos {
//		fmt.Println(v.Title, v.Link)
//	}
package way
