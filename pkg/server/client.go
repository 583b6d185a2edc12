package server

// ClientScript connects to /ws, reports clicks by hydration id and swaps in
// the rendered body. Elements with a data-pd-click marker have their default
// action prevented locally before the frame is sent.
const ClientScript = `
(function () {
  var app = document.getElementById("app");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");

  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "render") {
      app.innerHTML = msg.html;
    } else if (msg.type === "error") {
      console.error("[modal]", msg.error);
    }
  };

  document.addEventListener("click", function (ev) {
    var target = ev.target.closest("[data-hid]");
    if (!target || !app.contains(target)) {
      return;
    }
    for (var el = target; el && el !== app; el = el.parentElement) {
      if (el.hasAttribute("data-pd-click")) {
        ev.preventDefault();
        break;
      }
    }
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ type: "click", hid: target.getAttribute("data-hid") }));
    }
  });
})();
`

// Stylesheet is the minimal stylesheet served at /static/modal.css.
const Stylesheet = `body { font-family: system-ui, sans-serif; margin: 2rem; }
.controls { display: flex; gap: 1rem; align-items: center; flex-wrap: wrap; }
.btn { padding: .4rem .8rem; border: 1px solid #999; background: #fff; cursor: pointer; }
.btn.active, .btn-primary { background: #2563eb; color: #fff; border-color: #2563eb; }
.fade { transition: opacity .15s linear; }
.modal-backdrop { position: fixed; inset: 0; background: rgba(0, 0, 0, .5); }
.modal { position: fixed; inset: 0; overflow-y: auto; pointer-events: none; }
.modal-dialog { position: relative; margin: 1.75rem auto; max-width: 500px; pointer-events: auto; }
.modal-lg { max-width: 800px; }
.modal-xl { max-width: 1140px; }
.modal-dialog-centered { display: flex; align-items: center; min-height: calc(100% - 3.5rem); }
.modal-dialog-bottom { display: flex; align-items: flex-end; min-height: calc(100% - 3.5rem); }
.modal-content { position: relative; width: 100%; background: #fff; border-radius: .5rem; pointer-events: auto; }
.modal-close { position: absolute; top: .75rem; right: 1rem; text-decoration: none; color: #333; }
.ti-close::before { content: "\00d7"; font-style: normal; font-size: 1.5rem; }
.modal-body { padding: 1.5rem; }
`
