// Package ecs bridges word cloud clicks into an ECS world.
//
// [NewDonburiSink] publishes every [wordcloud.ClickEvent] to a [Donburi]
// world. Subscribe to [ClickEventType] in your systems to receive them:
//
//	sink := ecs.NewDonburiSink(world)
//	cloud := wordcloud.New(words, wordcloud.Config{Events: sink})
//	ecs.ClickEventType.Subscribe(world, onWordClicked)
//
// Events are queued until ClickEventType.ProcessEvents(world) runs.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
